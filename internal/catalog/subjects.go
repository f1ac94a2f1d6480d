// Package catalog содержит фиксированный каталог предметов экзамена:
// предметы, части и главы. Данные статичны и не изменяются через API,
// через API изменяются только вопросы внутри глав.
package catalog

// Part — часть предмета с заголовком и списком глав.
type Part struct {
	Title    string   `json:"title"`
	Chapters []string `json:"chapters"`
}

// Subject — предмет экзамена, состоящий из одной или двух частей.
type Subject struct {
	PartI  *Part `json:"partI,omitempty"`
	PartII *Part `json:"partII,omitempty"`
}

var subjects = map[string]Subject{
	"Company Law": {
		PartI: &Part{
			Title: "Part I: Company Law - Principles & Concepts (60 Marks)",
			Chapters: []string{
				"Introduction to Company Law",
				"Legal Status and Types of Registered Companies",
				"Memorandum and Articles of Association and its Alteration",
				"Shares and Share Capital - Concepts",
				"Members and Shareholders",
				"Debt Instruments - Concepts",
				"Charges",
				"Distribution of Profits",
				"Accounts and Auditors",
				"Compromise, Arrangement and Amalgamations - Concepts",
				"Dormant Company",
				"Inspection, Inquiry and Investigation",
			},
		},
		PartII: &Part{
			Title: "Part II: Company Administration and Meetings (40 Marks)",
			Chapters: []string{
				"General Meetings",
				"Directors",
				"Board Composition and Powers of the Board",
				"Meetings of Board and its Committees",
				"Corporate Social Responsibility - Concepts",
				"Annual Report - Concepts",
				"Key Managerial Personnel (KMP’s) and their Remuneration",
			},
		},
	},
	"JIGL": {
		PartI: &Part{
			Title: "Part I: Jurisprudence, Interpretation, and General Laws (100 Marks)",
			Chapters: []string{
				"Sources of Law",
				"Constitution of India",
				"Interpretation of Statutes",
				"Administrative Laws",
				"Law of Torts",
				"Law relating to Civil Procedure",
				"Laws relating to Crime and its Procedure",
				"Law relating to Evidence",
				"Law relating to Specific Relief",
				"Law relating to Limitation",
				"Law relating to Arbitration, Mediation, and Conciliation",
				"Indian Stamp Law",
				"Law relating to Registration of Documents",
				"Right to Information Law",
				"Law relating to Information Technology",
				"Contract Law",
				"Law relating to Sale of Goods",
				"Law relating to Negotiable Instruments",
			},
		},
	},
	"SUBIL": {
		PartI: &Part{
			Title: "Part I: Setting up of Business (60 Marks)",
			Chapters: []string{
				"Selection of Business Organization",
				"Corporate Entities – Companies",
				"Limited Liability Partnership",
				"Startups and its Registration",
				"Micro, Small and Medium Enterprises",
				"Conversion of Business Entities",
				"Non-Corporate Entities",
				"Financial Services Organisation",
				"Business Collaborations",
				"Setting up of Branch Office/ Liaison Office/ Wholly Owned Subsidiary by Foreign Company",
				"Setting up of Business outside India and Issues Relating thereto",
				"Identifying laws applicable to various Industries and their initial compliances",
				"Various Initial Registrations and Licenses",
			},
		},
		PartII: &Part{
			Title: "Part II: Industrial and Labour Laws (40 Marks)",
			Chapters: []string{
				"Constitution and Labour Laws",
				"Evaluation of Labour Legislation and need of Labour Code",
				"Law of Welfare & Working Condition",
				"Law of Industrial Relations",
				"Law of Wages",
				"Social Security Legislations",
				"Sexual Harassment of Women at Workplace (Prevention, Prohibition and Redressal) Act, 2013",
			},
		},
	},
}

// Get возвращает предмет по ключу и признак его наличия в каталоге.
func Get(subject string) (Subject, bool) {
	s, ok := subjects[subject]
	return s, ok
}
