package lexicon

// Compiled-in datasets used whenever a lexicon file is absent or unreadable.
// Entries are stored lowercase; display casing is applied at extraction time.

func defaultSkills() SkillsDB {
	return SkillsDB{
		"technology": {
			"programming": {
				"python", "javascript", "java", "c++", "c#", "php", "ruby",
				"golang", "rust", "sql",
			},
			"web_development": {
				"html", "css", "react", "angular", "vue", "node.js",
				"typescript", "full stack development", "frontend development",
				"backend development", "api development", "responsive design",
			},
			"databases": {
				"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
			},
			"cloud": {
				"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
			},
			"tools": {"git", "jira", "confluence", "slack"},
		},
		"marketing": {
			"digital_marketing": {
				"seo", "sem", "google ads", "facebook ads", "content marketing",
				"email marketing",
			},
			"analytics": {
				"google analytics", "adobe analytics", "tableau", "power bi",
				"excel",
			},
			"social_media": {
				"social media management", "hootsuite", "buffer",
			},
			"content": {
				"copywriting", "content creation", "blogging", "video editing",
				"graphic design",
			},
		},
		"finance": {
			"accounting": {
				"quickbooks", "sap", "oracle financials", "gaap", "ifrs",
				"financial modeling",
			},
			"analysis": {
				"financial analysis", "risk management", "investment analysis",
				"budgeting", "forecasting",
			},
			"tools": {"excel", "bloomberg terminal", "matlab", "vba", "python", "sql"},
		},
		"healthcare": {
			"clinical": {
				"patient care", "medical records", "hipaa", "clinical research",
				"medical coding",
			},
			"administrative": {
				"healthcare administration", "insurance", "billing", "scheduling",
			},
			"technical": {"epic", "cerner", "allscripts", "meditech", "emr systems"},
		},
		"sales": {
			"techniques": {
				"cold calling", "lead generation", "negotiation", "closing",
				"prospecting",
			},
			"crm": {"salesforce", "hubspot", "pipedrive", "zoho", "dynamics 365"},
			"analysis": {
				"sales analytics", "forecasting", "pipeline management",
				"territory management",
			},
		},
		"human_resources": {
			"recruitment": {
				"talent acquisition", "interviewing", "onboarding", "ats systems",
			},
			"compliance": {
				"employment law", "hr policies", "benefits administration",
				"payroll",
			},
			"systems": {"workday", "bamboohr", "adp", "successfactors"},
		},
		"operations": {
			"management": {
				"project management", "process improvement", "lean", "six sigma",
				"agile",
			},
			"supply_chain": {
				"inventory management", "logistics", "procurement",
				"vendor management",
			},
			"quality": {
				"quality assurance", "iso standards", "continuous improvement",
			},
		},
		"education": {
			"teaching": {
				"curriculum development", "lesson planning",
				"classroom management", "student assessment",
				"educational technology", "student mentoring", "exam preparation",
			},
			"technology": {
				"learning management systems", "blackboard", "canvas", "moodle",
				"microsoft office", "google classroom", "online teaching",
			},
			"subject_expertise": {
				"mathematics", "computer science", "statistics", "data analysis",
				"problem solving", "analytical skills",
			},
		},
		"design": {
			"ux_ui": {
				"user experience design", "user interface design", "wireframing",
				"prototyping", "user research", "usability testing",
				"interaction design",
			},
			"tools": {"sketch", "figma", "adobe xd", "invision", "balsamiq"},
			"web_design": {
				"html5", "css3", "javascript", "responsive design",
				"mobile design", "web accessibility",
			},
			"research": {
				"user interviews", "surveys", "a/b testing", "persona development",
				"journey mapping",
			},
		},
		"security": {
			"physical_security": {
				"surveillance", "access control", "patrol procedures",
				"incident response", "emergency procedures", "report writing",
			},
			"equipment": {"cctv systems", "alarm systems", "security equipment"},
			"skills": {
				"observation skills", "conflict resolution", "crowd control",
				"first aid",
			},
		},
		"soft_skills": {
			"leadership": {
				"team leadership", "mentoring", "coaching", "strategic thinking",
				"decision making",
			},
			"communication": {
				"public speaking", "presentation", "writing", "interpersonal",
				"negotiation",
			},
			"problem_solving": {
				"analytical thinking", "creative problem solving",
				"troubleshooting", "innovation",
			},
			"personal": {
				"time management", "adaptability", "attention to detail",
				"multitasking", "organization",
			},
		},
	}
}

func defaultJobTitles() ListDB {
	return ListDB{
		"technology": {
			"software engineer", "developer", "programmer", "web developer",
			"data scientist", "systems analyst", "database administrator",
			"network engineer", "cybersecurity analyst", "devops engineer",
			"product manager", "technical lead", "architect", "qa engineer",
		},
		"marketing": {
			"marketing manager", "digital marketer", "content marketer",
			"seo specialist", "brand manager", "social media manager",
			"marketing coordinator", "marketing analyst",
		},
		"finance": {
			"financial analyst", "accountant", "controller", "cfo",
			"investment banker", "financial advisor", "credit analyst",
			"budget analyst", "audit manager", "risk analyst",
			"compliance officer",
		},
		"healthcare": {
			"registered nurse", "physician", "medical assistant",
			"healthcare administrator", "physical therapist", "pharmacist",
			"medical technician", "clinical coordinator", "medical coder",
		},
		"sales": {
			"sales representative", "account manager", "business development",
			"sales manager", "inside sales", "sales coordinator",
			"sales engineer", "regional sales manager",
		},
		"human_resources": {
			"hr manager", "recruiter", "hr coordinator", "talent acquisition",
			"hr business partner", "benefits administrator", "hr generalist",
			"training manager", "hr director",
		},
		"operations": {
			"operations manager", "project manager", "program manager",
			"business analyst", "supply chain manager", "logistics coordinator",
			"operations analyst", "quality manager",
		},
		"education": {
			"teacher", "professor", "instructor", "academic advisor",
			"principal", "curriculum coordinator", "tutor",
			"training specialist", "instructional designer",
			"mathematics teacher", "science teacher", "english teacher",
		},
		"design": {
			"ux designer", "ui designer", "user experience designer",
			"product designer", "interaction designer", "visual designer",
			"graphic designer", "web designer", "design lead",
			"senior designer", "design director",
		},
		"security": {
			"security guard", "security officer", "security specialist",
			"security supervisor", "security manager",
			"loss prevention officer", "surveillance operator",
			"security analyst", "security consultant",
		},
	}
}

func defaultIndustries() ListDB {
	return ListDB{
		"technology": {
			"software", "it services", "telecommunications", "internet",
			"computer hardware",
		},
		"finance": {
			"banking", "investment", "insurance", "real estate", "fintech",
		},
		"healthcare": {
			"hospitals", "pharmaceuticals", "medical devices", "biotechnology",
			"healthcare services",
		},
		"retail": {
			"e-commerce", "fashion", "consumer goods", "automotive",
			"food & beverage",
		},
		"manufacturing": {
			"aerospace", "chemicals", "electronics", "industrial equipment",
		},
		"energy": {
			"oil & gas", "renewable energy", "utilities", "mining",
		},
		"media": {
			"advertising", "entertainment", "publishing", "broadcasting",
			"digital media",
		},
		"consulting": {
			"management consulting", "strategy", "hr consulting",
			"it consulting",
		},
		"education": {
			"universities", "k-12 schools", "online education", "training",
			"educational technology",
		},
		"government": {
			"federal government", "state government", "local government",
			"military", "non-profit",
		},
	}
}

func defaultCertifications() ListDB {
	return ListDB{
		"technology": {
			"aws certified", "microsoft certified", "google cloud certified",
			"cisco certified", "comptia security+", "pmp", "cissp", "cisa",
			"itil", "scrum master",
		},
		"finance": {
			"cpa", "cfa", "frm", "caia", "cfp", "cia", "cma", "acca",
		},
		"healthcare": {
			"bls", "acls", "cpr", "medical license", "nursing license",
			"pharmacy license",
		},
		"marketing": {
			"google ads certified", "hubspot certified", "facebook blueprint",
			"google analytics certified",
		},
		"project_management": {
			"pmp", "prince2", "agile certified", "scrum master",
			"lean six sigma", "capm",
		},
		"hr": {"shrm-cp", "shrm-scp", "phr", "sphr", "hrci", "cipd"},
		"security": {
			"security guard license", "security officer certification",
			"security clearance", "loss prevention certification",
		},
		"design": {
			"adobe certified expert", "ux certification",
			"google ux design certificate",
		},
	}
}

func defaultEducationKeywords() KeywordGroups {
	return KeywordGroups{
		"degree_types": {
			"bachelor", "bachelor's", "bachelors", "master", "master's",
			"masters", "phd", "ph.d", "doctorate", "doctoral", "associate",
			"associates", "diploma", "certificate", "certification", "mba",
			"m.b.a", "md", "m.d", "jd", "j.d", "bs", "b.s", "ba", "b.a",
			"ms", "m.s", "ma", "m.a", "bfa", "mfa",
		},
		"institutions": {
			"university", "college", "institute", "school", "academy",
			"polytechnic", "community college", "technical college",
			"vocational school", "trade school",
		},
		"fields": {
			"computer science", "business administration", "engineering",
			"marketing", "finance", "psychology", "biology", "chemistry",
			"physics", "mathematics", "economics", "accounting", "nursing",
			"medicine", "law", "education", "graphic design",
			"interaction design", "human computer interaction",
			"user experience", "criminal justice", "security management",
			"communications", "journalism", "statistics", "data science",
		},
		"honors": {
			"summa cum laude", "magna cum laude", "cum laude", "with honors",
			"dean's list", "honor roll", "first class", "distinction",
			"merit", "valedictorian",
		},
		"gpa_indicators": {
			"gpa", "grade point average", "cumulative gpa", "major gpa",
			"overall gpa",
		},
	}
}

// fallback datasets are the last resort when both the lexicon files and the
// category defaults fail to load.
func fallbackSkills() SkillsDB {
	return SkillsDB{"general": {"basic": {"communication", "teamwork", "problem solving"}}}
}

func fallbackJobTitles() ListDB {
	return ListDB{"general": {"manager", "specialist", "coordinator", "analyst"}}
}

func fallbackIndustries() ListDB {
	return ListDB{"general": {"business", "services", "manufacturing"}}
}

func fallbackCertifications() ListDB {
	return ListDB{"general": {"certified", "licensed"}}
}

func fallbackEducationKeywords() KeywordGroups {
	return KeywordGroups{"degree_types": {"bachelor", "master", "degree"}}
}
