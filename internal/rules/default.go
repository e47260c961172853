package rules

// Rule IDs of the built-in set, in precedence order.
const (
	IDName        = "name"
	IDDateOfBirth = "dob"
	IDAddress     = "address"
	IDEmail       = "email"
	IDPhone       = "phone"
	IDHealth      = "health"
	IDEthnicity   = "ethnicity"
	IDReligion    = "religion"
	IDPolitical   = "political"
	IDSexuality   = "sexual_orientation"
	IDGender      = "gender"
	IDCriminal    = "criminal_record"
	IDUnion       = "union_membership"
	IDBiometric   = "biometric"
	IDTaxFile     = "tax_file_number"
	IDGovernment  = "government_identifier"
	IDFinancial   = "financial"
	IDVictorian   = "victorian"
)

var defaultRules = MustNew(
	// Personal identifiers
	Rule{
		ID:       IDName,
		Patterns: PatternGroup{"name", "first name", "last name", "surname", "given name"},
		Category: "Personal identifier under APP 6 (use or disclosure) and OVIC IPP 2",
	},
	Rule{
		ID:       IDDateOfBirth,
		Patterns: PatternGroup{"dob", "date of birth", "birth", "birthdate"},
		Category: "Personal identifier under APP 3 (collection) and OVIC IPP 1",
	},
	Rule{
		ID:       IDAddress,
		Patterns: PatternGroup{"address", "street", "suburb", "postcode", "postal"},
		Category: "Personal identifier under APP 11 (security) and OVIC IPP 4",
	},
	Rule{
		ID:       IDEmail,
		Patterns: PatternGroup{"email", "e-mail"},
		Category: "Personal identifier under APP 7 (direct marketing) and OVIC IPP 2",
	},
	Rule{
		ID:       IDPhone,
		Patterns: PatternGroup{"phone", "mobile", "telephone", "contact number", "fax"},
		Category: "Personal identifier under APP 7 (direct marketing) and OVIC IPP 2 (contact details)",
	},

	// Sensitive information under APP 3.3 / IPP 10
	Rule{
		ID:       IDHealth,
		Patterns: PatternGroup{"health", "medical", "diagnosis", "condition", "medication", "disability", "treatment"},
		Category: "Health information (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDEthnicity,
		Patterns: PatternGroup{"race", "racial", "ethnic", "ethnicity", "indigenous", "aboriginal", "torres strait"},
		Category: "Racial or ethnic origin (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDReligion,
		Patterns: PatternGroup{"religion", "religious", "faith", "church", "denomination"},
		Category: "Religious beliefs or affiliations (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDPolitical,
		Patterns: PatternGroup{"political", "politics", "party", "voting"},
		Category: "Political opinions or membership (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDSexuality,
		Patterns: PatternGroup{"sexual", "orientation", "sexuality", "lgbt"},
		Category: "Sexual orientation or practices (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDGender,
		Patterns: PatternGroup{"gender", "sex", "pronoun"},
		Category: "Gender identity (treat as sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDCriminal,
		Patterns: PatternGroup{"criminal", "conviction", "offence", "offense", "police check", "arrest"},
		Category: "Criminal record (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDUnion,
		Patterns: PatternGroup{"union", "trade union", "union membership"},
		Category: "Trade union membership (sensitive) under APP 3.3 and OVIC IPP 10",
	},
	Rule{
		ID:       IDBiometric,
		Patterns: PatternGroup{"biometric", "fingerprint", "facial", "face", "retina", "iris", "voiceprint", "dna"},
		Category: "Biometric information (sensitive) under APP 3.3 and OVIC IPP 10",
	},

	// Special identifiers
	Rule{
		ID:       IDTaxFile,
		Patterns: PatternGroup{"tfn", "tax file", "tax file number"},
		Category: "Tax file number (restricted) under the Privacy (Tax File Number) Rule 2015 and APP 9",
	},
	Rule{
		ID:       IDGovernment,
		Patterns: PatternGroup{"licence", "license", "passport", "medicare", "centrelink", "visa", "id"},
		Category: "Government-related identifier under APP 9 and OVIC IPP 7 (unique identifiers)",
	},
	Rule{
		ID:       IDFinancial,
		Patterns: PatternGroup{"bank", "bsb", "account number", "credit card", "card number", "iban", "swift", "payment"},
		Category: "Financial information under APP 11 (security) and OVIC IPP 4",
	},
	Rule{
		ID:       IDVictorian,
		Patterns: PatternGroup{"vic", "victoria", "vicroads", "myki", "ovic"},
		Category: "Victorian public sector identifier under the Privacy and Data Protection Act 2014 (Vic) and OVIC IPP 7",
	},
)

// Default returns the built-in rule set. It is built once per process and is
// shared; RuleSet values are immutable.
func Default() RuleSet { return defaultRules }
