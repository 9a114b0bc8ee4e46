package catalog

import "github.com/poiesic/assessrec/core"

// Sample returns the built-in assessment catalog. It covers cognitive
// ability tests, programming skill tests, personality and behavior
// questionnaires, simulations, and role-specific skill assessments, so the
// engine can serve meaningful recommendations without an external data
// file. The returned slice is freshly allocated on every call.
func Sample() []core.Assessment {
	return []core.Assessment{
		{
			Name:            "SHL Verify G+ Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-g-plus/",
			Description:     "General cognitive ability assessment measuring critical reasoning skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude", "Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
		{
			Name:            "SHL Numerical Reasoning Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-numerical/",
			Description:     "Measures ability to work with numerical data and solve problems",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "Yes",
			RemoteSupport:   "Yes",
			Duration:        25,
		},
		{
			Name:            "SHL Verbal Reasoning Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-verbal/",
			Description:     "Assesses verbal comprehension and reasoning abilities",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "Yes",
			RemoteSupport:   "Yes",
			Duration:        19,
		},
		{
			Name:            "SHL Inductive Reasoning Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-inductive/",
			Description:     "Evaluates logical thinking and pattern recognition",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "Yes",
			RemoteSupport:   "Yes",
			Duration:        18,
		},
		{
			Name:            "SHL Deductive Reasoning Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-deductive/",
			Description:     "Tests logical deduction and rule-based reasoning",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        20,
		},
		{
			Name:            "SHL Mechanical Comprehension Test",
			URL:             "https://www.shl.com/solutions/products/assessments/mechanical-comprehension/",
			Description:     "Assesses understanding of mechanical principles and concepts",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
		{
			Name:            "SHL Calculation Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-calculation/",
			Description:     "Measures basic numerical computation skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        10,
		},
		{
			Name:            "SHL Checking Test",
			URL:             "https://www.shl.com/solutions/products/assessments/verify-checking/",
			Description:     "Evaluates attention to detail and error detection",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        12,
		},
		{
			Name:            "Java Programming Test",
			URL:             "https://www.shl.com/solutions/products/assessments/java-test/",
			Description:     "Technical assessment for Java programming skills and knowledge",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            "Python Programming Test",
			URL:             "https://www.shl.com/solutions/products/assessments/python-test/",
			Description:     "Evaluates Python programming capabilities and best practices",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            "JavaScript Programming Test",
			URL:             "https://www.shl.com/solutions/products/assessments/javascript-test/",
			Description:     "Tests JavaScript programming skills and web development knowledge",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        40,
		},
		{
			Name:            "SQL Database Test",
			URL:             "https://www.shl.com/solutions/products/assessments/sql-test/",
			Description:     "Assesses SQL query writing and database management skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        35,
		},
		{
			Name:            "C++ Programming Test",
			URL:             "https://www.shl.com/solutions/products/assessments/cpp-test/",
			Description:     "Technical assessment for C++ programming proficiency",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            ".NET Development Test",
			URL:             "https://www.shl.com/solutions/products/assessments/dotnet-test/",
			Description:     "Evaluates .NET framework knowledge and C# programming skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            "Occupational Personality Questionnaire (OPQ32)",
			URL:             "https://www.shl.com/solutions/products/assessments/opq32/",
			Description:     "Comprehensive personality assessment for workplace behavior",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            "SHL Situational Judgement Test",
			URL:             "https://www.shl.com/solutions/products/assessments/sjt/",
			Description:     "Evaluates decision-making in workplace scenarios",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Biodata & Situational Judgement"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
		{
			Name:            "SHL Motivation Questionnaire (MQ)",
			URL:             "https://www.shl.com/solutions/products/assessments/motivation-questionnaire/",
			Description:     "Assesses workplace motivators and drivers",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        25,
		},
		{
			Name:            "SHL Cultural Fit Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/cultural-fit/",
			Description:     "Evaluates alignment with organizational culture and values",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        20,
		},
		{
			Name:            "SHL Leadership Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/leadership/",
			Description:     "Comprehensive evaluation of leadership potential and competencies",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Competencies", "Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        60,
		},
		{
			Name:            "SHL Teamwork Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/teamwork/",
			Description:     "Measures collaboration and team interaction skills",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Competencies", "Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
		{
			Name:            "SHL Customer Service Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/customer-service/",
			Description:     "Evaluates customer-focused behaviors and service orientation",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Competencies", "Personality & Behavior"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        25,
		},
		{
			Name:            "SHL Management Simulation",
			URL:             "https://www.shl.com/solutions/products/assessments/management-simulation/",
			Description:     "Interactive simulation for assessing management competencies",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Simulations", "Assessment Exercises"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        90,
		},
		{
			Name:            "SHL Sales Simulation",
			URL:             "https://www.shl.com/solutions/products/assessments/sales-simulation/",
			Description:     "Role-play simulation for sales competency assessment",
			Category:        core.CategoryPersonality,
			TestType:        []string{"Simulations"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        60,
		},
		{
			Name:            "SHL In-Basket Exercise",
			URL:             "https://www.shl.com/solutions/products/assessments/in-basket/",
			Description:     "Prioritization and decision-making exercise",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Assessment Exercises"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        45,
		},
		{
			Name:            "Data Analysis Test",
			URL:             "https://www.shl.com/solutions/products/assessments/data-analysis/",
			Description:     "Assesses data interpretation and analytical skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        35,
		},
		{
			Name:            "Microsoft Office Skills Test",
			URL:             "https://www.shl.com/solutions/products/assessments/microsoft-office/",
			Description:     "Tests proficiency in Microsoft Office applications",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
		{
			Name:            "Project Management Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/project-management/",
			Description:     "Evaluates project management knowledge and skills",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills", "Competencies"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        40,
		},
		{
			Name:            "Financial Reasoning Test",
			URL:             "https://www.shl.com/solutions/products/assessments/financial-reasoning/",
			Description:     "Assesses understanding of financial concepts and analysis",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Knowledge & Skills"},
			AdaptiveSupport: "No",
			RemoteSupport:   "Yes",
			Duration:        35,
		},
		{
			Name:            "Critical Thinking Assessment",
			URL:             "https://www.shl.com/solutions/products/assessments/critical-thinking/",
			Description:     "Evaluates analytical and critical thinking abilities",
			Category:        core.CategoryKnowledge,
			TestType:        []string{"Ability & Aptitude"},
			AdaptiveSupport: "Yes",
			RemoteSupport:   "Yes",
			Duration:        30,
		},
	}
}
