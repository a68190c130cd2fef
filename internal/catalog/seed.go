package catalog

// seedData returns the built-in reference data.
func seedData() Data {
	return Data{
		Categories:      seedCategories,
		Skills:          seedSkills,
		CareerGoals:     seedCareerGoals,
		Requirements:    seedRequirements,
		Interests:       seedInterests,
		Recommendations: seedRecommendations,
		Questions:       seedQuestions,
	}
}

var seedCategories = []CategoryInfo{
	{ID: CategoryDataAnalytics, Name: "Health Data & Analytics", Description: "Statistical analysis, data visualization, and healthcare metrics", Icon: "📊"},
	{ID: CategoryInformatics, Name: "Health Informatics Systems", Description: "EHR systems, clinical workflows, and healthcare IT", Icon: "🏥"},
	{ID: CategoryDataStandards, Name: "Health Data Standards", Description: "HL7 FHIR, ICD-10, SNOMED CT, and interoperability", Icon: "📋"},
	{ID: CategoryPrivacy, Name: "Privacy, Security & Ethics", Description: "HIPAA compliance, data governance, and ethical AI", Icon: "🔒"},
	{ID: CategoryAIDigital, Name: "AI & Digital Health", Description: "Machine learning, NLP, and digital health solutions", Icon: "🤖"},
}

var seedSkills = []Skill{
	{ID: "sql", Name: "SQL & Database Management", Category: CategoryDataAnalytics, Description: "Query and manage healthcare databases"},
	{ID: "python", Name: "Python for Healthcare", Category: CategoryDataAnalytics, Description: "Python programming for health data analysis"},
	{ID: "r-stats", Name: "R Statistical Computing", Category: CategoryDataAnalytics, Description: "Statistical analysis with R"},
	{ID: "tableau", Name: "Tableau & Power BI", Category: CategoryDataAnalytics, Description: "Healthcare data visualization"},
	{ID: "biostatistics", Name: "Biostatistics", Category: CategoryDataAnalytics, Description: "Statistical methods for healthcare research"},

	{ID: "ehr", Name: "EHR Systems (Epic, Cerner)", Category: CategoryInformatics, Description: "Electronic health record management"},
	{ID: "clinical-workflows", Name: "Clinical Workflow Optimization", Category: CategoryInformatics, Description: "Improving clinical processes"},
	{ID: "health-it", Name: "Health IT Infrastructure", Category: CategoryInformatics, Description: "Healthcare technology systems"},
	{ID: "cdss", Name: "Clinical Decision Support", Category: CategoryInformatics, Description: "Decision support systems"},

	{ID: "hl7-fhir", Name: "HL7 FHIR", Category: CategoryDataStandards, Description: "Healthcare interoperability standards"},
	{ID: "icd-10", Name: "ICD-10 Coding", Category: CategoryDataStandards, Description: "Medical classification systems"},
	{ID: "snomed-ct", Name: "SNOMED CT", Category: CategoryDataStandards, Description: "Clinical terminology"},
	{ID: "dicom", Name: "DICOM Imaging", Category: CategoryDataStandards, Description: "Medical imaging standards"},

	{ID: "hipaa", Name: "HIPAA Compliance", Category: CategoryPrivacy, Description: "Healthcare privacy regulations"},
	{ID: "data-governance", Name: "Data Governance", Category: CategoryPrivacy, Description: "Healthcare data policies"},
	{ID: "cybersecurity", Name: "Healthcare Cybersecurity", Category: CategoryPrivacy, Description: "Protecting health information"},
	{ID: "ethics", Name: "AI Ethics in Healthcare", Category: CategoryPrivacy, Description: "Ethical AI implementation"},

	{ID: "ml-healthcare", Name: "Machine Learning for Healthcare", Category: CategoryAIDigital, Description: "ML models for clinical applications"},
	{ID: "nlp-clinical", Name: "Clinical NLP", Category: CategoryAIDigital, Description: "Natural language processing for clinical text"},
	{ID: "computer-vision", Name: "Medical Image Analysis", Category: CategoryAIDigital, Description: "AI for medical imaging"},
	{ID: "predictive-analytics", Name: "Predictive Health Analytics", Category: CategoryAIDigital, Description: "Forecasting health outcomes"},
	{ID: "telemedicine", Name: "Telemedicine Technology", Category: CategoryAIDigital, Description: "Remote healthcare solutions"},
}

var seedCareerGoals = []CareerGoal{
	{ID: "health-data-analyst", Title: "Health Data Analyst", Description: "Analyze healthcare data to improve patient outcomes and operational efficiency", Icon: "📊"},
	{ID: "clinical-informatics", Title: "Clinical Informatics Specialist", Description: "Bridge the gap between clinical practice and health IT systems", Icon: "🏥"},
	{ID: "medical-data-scientist", Title: "Medical Data Scientist", Description: "Apply advanced analytics and ML to solve complex healthcare problems", Icon: "🔬"},
	{ID: "health-ai-engineer", Title: "Health AI/ML Engineer", Description: "Develop AI solutions for diagnostics, treatment, and patient care", Icon: "🤖"},
	{ID: "health-it-consultant", Title: "Health IT Consultant", Description: "Guide healthcare organizations in technology adoption and optimization", Icon: "💼"},
	{ID: "bioinformatics-specialist", Title: "Bioinformatics Specialist", Description: "Analyze biological and genomic data for research and clinical applications", Icon: "🧬"},
}

var seedRequirements = map[string][]string{
	"health-data-analyst":       {"sql", "python", "tableau", "biostatistics", "hipaa"},
	"clinical-informatics":      {"ehr", "clinical-workflows", "hl7-fhir", "hipaa", "cdss"},
	"medical-data-scientist":    {"python", "ml-healthcare", "biostatistics", "predictive-analytics", "sql"},
	"health-ai-engineer":        {"ml-healthcare", "nlp-clinical", "computer-vision", "python", "ethics"},
	"health-it-consultant":      {"ehr", "health-it", "hipaa", "data-governance", "clinical-workflows"},
	"bioinformatics-specialist": {"python", "r-stats", "biostatistics", "ml-healthcare", "data-governance"},
}

var seedInterests = []string{
	"Patient Outcome Analysis",
	"Clinical Research",
	"Healthcare AI Ethics",
	"Population Health",
	"Precision Medicine",
	"Healthcare Policy",
	"Medical Device Innovation",
	"Digital Therapeutics",
	"Mental Health Tech",
	"Genomics & Personalized Medicine",
	"Healthcare Startups",
	"Public Health Informatics",
	"Remote Patient Monitoring",
	"Healthcare Automation",
	"Drug Discovery",
	"Clinical Trials Optimization",
}

var seedRecommendations = []Recommendation{
	{
		ID:          "rec-1",
		Type:        TypeCourse,
		Title:       "Healthcare Data Analytics Fundamentals",
		Description: "Master SQL, Python, and statistical methods for healthcare data analysis",
		Difficulty:  LevelBeginner,
		Skills:      []string{"sql", "python", "biostatistics"},
		Duration:    "8 weeks",
		Provider:    "Health Data Academy",
		Explanation: "This course builds foundational skills essential for your Health Data Analyst career goal",
	},
	{
		ID:          "rec-2",
		Type:        TypeCourse,
		Title:       "HL7 FHIR & Interoperability",
		Description: "Deep dive into healthcare data exchange standards and API development",
		Difficulty:  LevelIntermediate,
		Skills:      []string{"hl7-fhir", "health-it"},
		Duration:    "6 weeks",
		Provider:    "Interoperability Institute",
		Explanation: "Critical for working with modern healthcare systems and EHR integrations",
	},
	{
		ID:          "rec-3",
		Type:        TypeProject,
		Title:       "Build a Patient Risk Prediction Model",
		Description: "Create an ML model to predict patient readmission risk using real-world data patterns",
		Difficulty:  LevelAdvanced,
		Skills:      []string{"ml-healthcare", "predictive-analytics", "python"},
		Duration:    "4 weeks",
		Explanation: "Hands-on project that demonstrates your ability to apply ML to clinical problems",
	},
	{
		ID:          "rec-4",
		Type:        TypeCourse,
		Title:       "HIPAA & Healthcare Compliance",
		Description: "Comprehensive guide to healthcare privacy regulations and compliance",
		Difficulty:  LevelBeginner,
		Skills:      []string{"hipaa", "data-governance"},
		Duration:    "3 weeks",
		Provider:    "Compliance Academy",
		Explanation: "Essential knowledge required for any healthcare data professional",
	},
	{
		ID:          "rec-5",
		Type:        TypeProject,
		Title:       "Clinical Dashboard Development",
		Description: "Design and build interactive dashboards for clinical performance metrics",
		Difficulty:  LevelIntermediate,
		Skills:      []string{"tableau", "sql", "clinical-workflows"},
		Duration:    "3 weeks",
		Explanation: "Practical project to showcase your data visualization skills in a clinical context",
	},
	{
		ID:          "rec-6",
		Type:        TypeCourse,
		Title:       "Clinical NLP & Text Mining",
		Description: "Extract insights from clinical notes and medical literature using NLP",
		Difficulty:  LevelAdvanced,
		Skills:      []string{"nlp-clinical", "python", "ml-healthcare"},
		Duration:    "10 weeks",
		Provider:    "AI Health Institute",
		Explanation: "Advanced skill highly valued in Health AI/ML Engineering roles",
	},
}

var seedQuestions = []QuizQuestion{
	{
		ID:       "q1",
		Question: "What does HIPAA stand for?",
		Options: []string{
			"Health Insurance Portability and Accountability Act",
			"Healthcare Information Privacy and Access Act",
			"Hospital Insurance Protection and Administration Act",
			"Health Information Processing and Analytics Act",
		},
		CorrectAnswer: 0,
		SkillCategory: CategoryPrivacy,
		Difficulty:    DifficultyEasy,
	},
	{
		ID:            "q2",
		Question:      "Which standard is used for healthcare data interoperability?",
		Options:       []string{"JSON-RPC", "HL7 FHIR", "SOAP", "GraphQL"},
		CorrectAnswer: 1,
		SkillCategory: CategoryDataStandards,
		Difficulty:    DifficultyEasy,
	},
	{
		ID:       "q3",
		Question: "What is the primary purpose of ICD-10 codes?",
		Options: []string{
			"Patient identification",
			"Drug classification",
			"Disease and diagnosis classification",
			"Hospital accreditation",
		},
		CorrectAnswer: 2,
		SkillCategory: CategoryDataStandards,
		Difficulty:    DifficultyEasy,
	},
	{
		ID:            "q4",
		Question:      "Which Python library is commonly used for biostatistical analysis?",
		Options:       []string{"Django", "Flask", "SciPy/StatsModels", "Pygame"},
		CorrectAnswer: 2,
		SkillCategory: CategoryDataAnalytics,
		Difficulty:    DifficultyMedium,
	},
	{
		ID:       "q5",
		Question: "What is a Clinical Decision Support System (CDSS)?",
		Options: []string{
			"A billing software",
			"A tool that provides clinicians with patient-specific assessments",
			"A patient portal",
			"A scheduling system",
		},
		CorrectAnswer: 1,
		SkillCategory: CategoryInformatics,
		Difficulty:    DifficultyMedium,
	},
	{
		ID:            "q6",
		Question:      "Which metric is commonly used to evaluate a medical diagnostic ML model?",
		Options:       []string{"R-squared", "Mean Absolute Error", "AUC-ROC", "Adjusted R-squared"},
		CorrectAnswer: 2,
		SkillCategory: CategoryAIDigital,
		Difficulty:    DifficultyMedium,
	},
	{
		ID:       "q7",
		Question: "What is the minimum necessary rule in HIPAA?",
		Options: []string{
			"Minimum data storage requirements",
			"Using only the minimum PHI needed for a task",
			"Minimum number of security officers",
			"Minimum password length",
		},
		CorrectAnswer: 1,
		SkillCategory: CategoryPrivacy,
		Difficulty:    DifficultyHard,
	},
	{
		ID:       "q8",
		Question: "In clinical NLP, what is Named Entity Recognition (NER) used for?",
		Options: []string{
			"Translating medical documents",
			"Identifying and classifying medical terms in text",
			"Encrypting patient data",
			"Generating clinical notes",
		},
		CorrectAnswer: 1,
		SkillCategory: CategoryAIDigital,
		Difficulty:    DifficultyHard,
	},
	{
		ID:       "q9",
		Question: "What does SNOMED CT provide?",
		Options: []string{
			"Insurance billing codes",
			"A comprehensive clinical terminology",
			"Network security protocols",
			"Patient consent forms",
		},
		CorrectAnswer: 1,
		SkillCategory: CategoryDataStandards,
		Difficulty:    DifficultyMedium,
	},
	{
		ID:            "q10",
		Question:      "Which EHR system has the largest market share in the US?",
		Options:       []string{"Cerner", "Epic", "Meditech", "Allscripts"},
		CorrectAnswer: 1,
		SkillCategory: CategoryInformatics,
		Difficulty:    DifficultyEasy,
	},
}
