package druginfo

// catalog is the built-in drug reference. Keys are lowercase drug names.
var catalog = map[string]Drug{
	"warfarin": {
		Name:              "warfarin",
		Class:             "Anticoagulant",
		Interactions:      []string{"aspirin", "ibuprofen", "naproxen", "celecoxib", "clopidogrel", "heparin", "amiodarone", "fluconazole", "metronidazole", "clarithromycin", "erythromycin", "ciprofloxacin", "sulfamethoxazole"},
		FoodInteractions:  []string{"green leafy vegetables", "cranberry juice", "alcohol", "grapefruit juice", "garlic supplements", "ginger", "ginseng"},
		Warnings:          "Increased bleeding risk. Monitor INR closely.",
		Contraindications: []string{"active bleeding", "severe liver disease", "pregnancy"},
		SideEffects:       []string{"bleeding", "bruising", "hair loss", "skin necrosis"},
	},
	"aspirin": {
		Name:              "aspirin",
		Class:             "Antiplatelet/NSAID",
		Interactions:      []string{"warfarin", "heparin", "clopidogrel", "ibuprofen", "naproxen", "methotrexate", "ace inhibitors", "furosemide"},
		FoodInteractions:  []string{"alcohol", "ginger", "garlic supplements", "turmeric"},
		Warnings:          "Increased bleeding risk, GI irritation. Use with caution in peptic ulcer disease.",
		Contraindications: []string{"active GI bleeding", "severe asthma", "children with viral infections (Reye syndrome)"},
		SideEffects:       []string{"GI bleeding", "tinnitus", "nausea", "heartburn"},
	},
	"lisinopril": {
		Name:              "lisinopril",
		Class:             "ACE Inhibitor",
		Interactions:      []string{"potassium supplements", "spironolactone", "amiloride", "nsaids", "lithium", "aliskiren"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods", "alcohol"},
		Warnings:          "Monitor potassium levels. Risk of hyperkalemia and acute kidney injury.",
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis", "angioedema history"},
		SideEffects:       []string{"dry cough", "hyperkalemia", "angioedema", "hypotension"},
	},
	"atorvastatin": {
		Name:              "atorvastatin",
		Class:             "HMG-CoA Reductase Inhibitor",
		Interactions:      []string{"clarithromycin", "erythromycin", "itraconazole", "ketoconazole", "cyclosporine", "gemfibrozil", "niacin", "digoxin"},
		FoodInteractions:  []string{"grapefruit juice", "alcohol"},
		Warnings:          "Monitor liver enzymes and creatine kinase. Risk of myopathy and rhabdomyolysis.",
		Contraindications: []string{"active liver disease", "pregnancy", "breastfeeding"},
		SideEffects:       []string{"myalgia", "elevated liver enzymes", "headache", "nausea"},
	},
	"amlodipine": {
		Name:              "amlodipine",
		Class:             "Calcium Channel Blocker",
		Interactions:      []string{"simvastatin", "cyclosporine", "tacrolimus"},
		FoodInteractions:  []string{"grapefruit juice", "high sodium foods"},
		Warnings:          "Monitor blood pressure. May cause peripheral edema.",
		Contraindications: []string{"severe aortic stenosis", "cardiogenic shock"},
		SideEffects:       []string{"peripheral edema", "fatigue", "dizziness", "flushing"},
	},
	"metformin": {
		Name:              "metformin",
		Class:             "Biguanide",
		Interactions:      []string{"contrast agents", "cimetidine", "furosemide", "nifedipine", "topiramate"},
		FoodInteractions:  []string{"alcohol", "high fiber meals"},
		Warnings:          "Risk of lactic acidosis. Discontinue before contrast procedures.",
		Contraindications: []string{"severe kidney disease", "metabolic acidosis", "severe dehydration"},
		SideEffects:       []string{"GI upset", "nausea", "diarrhea", "metallic taste", "vitamin B12 deficiency"},
	},
	"insulin": {
		Name:              "insulin",
		Class:             "Hormone",
		Interactions:      []string{"ace inhibitors", "beta blockers", "octreotide", "lanreotide"},
		FoodInteractions:  []string{"alcohol", "carbohydrate timing"},
		Warnings:          "Risk of hypoglycemia. Monitor blood glucose closely.",
		Contraindications: []string{"hypoglycemia"},
		SideEffects:       []string{"hypoglycemia", "weight gain", "injection site reactions"},
	},
	"glipizide": {
		Name:              "glipizide",
		Class:             "Sulfonylurea",
		Interactions:      []string{"warfarin", "fluconazole", "clarithromycin", "beta blockers"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Risk of hypoglycemia, especially in elderly.",
		Contraindications: []string{"type 1 diabetes", "diabetic ketoacidosis"},
		SideEffects:       []string{"hypoglycemia", "weight gain", "nausea"},
	},
	"amoxicillin": {
		Name:              "amoxicillin",
		Class:             "Penicillin Antibiotic",
		Interactions:      []string{"warfarin", "methotrexate", "oral contraceptives"},
		FoodInteractions:  []string{},
		Warnings:          "Risk of allergic reactions. May reduce oral contraceptive effectiveness.",
		Contraindications: []string{"penicillin allergy"},
		SideEffects:       []string{"diarrhea", "nausea", "rash", "candidiasis"},
	},
	"clarithromycin": {
		Name:              "clarithromycin",
		Class:             "Macrolide Antibiotic",
		Interactions:      []string{"warfarin", "statins", "digoxin", "theophylline", "carbamazepine", "cyclosporine"},
		FoodInteractions:  []string{"grapefruit juice"},
		Warnings:          "QT prolongation risk. Multiple drug interactions via CYP3A4.",
		Contraindications: []string{"history of QT prolongation", "severe liver disease"},
		SideEffects:       []string{"nausea", "diarrhea", "taste disturbance", "QT prolongation"},
	},
	"ciprofloxacin": {
		Name:              "ciprofloxacin",
		Class:             "Fluoroquinolone Antibiotic",
		Interactions:      []string{"warfarin", "theophylline", "tizanidine", "dairy products", "iron supplements"},
		FoodInteractions:  []string{"dairy products", "calcium supplements", "iron supplements"},
		Warnings:          "Tendon rupture risk. C. diff colitis risk.",
		Contraindications: []string{"tendon disorders", "myasthenia gravis"},
		SideEffects:       []string{"nausea", "diarrhea", "tendinitis", "CNS effects"},
	},
	"omeprazole": {
		Name:              "omeprazole",
		Class:             "Proton Pump Inhibitor",
		Interactions:      []string{"warfarin", "clopidogrel", "digoxin", "ketoconazole", "iron supplements"},
		FoodInteractions:  []string{},
		Warnings:          "Long-term use may increase risk of fractures and C. diff.",
		Contraindications: []string{"hypersensitivity to PPIs"},
		SideEffects:       []string{"headache", "nausea", "diarrhea", "vitamin B12 deficiency"},
	},
	"ranitidine": {
		Name:              "ranitidine",
		Class:             "H2 Receptor Antagonist",
		Interactions:      []string{"warfarin", "ketoconazole", "atazanavir"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Note: Ranitidine recalled due to NDMA contamination.",
		Contraindications: []string{"hypersensitivity"},
		SideEffects:       []string{"headache", "dizziness", "constipation"},
	},
	"albuterol": {
		Name:              "albuterol",
		Class:             "Beta-2 Agonist",
		Interactions:      []string{"beta blockers", "digoxin", "tricyclic antidepressants"},
		FoodInteractions:  []string{"caffeine"},
		Warnings:          "May cause paradoxical bronchospasm. Monitor heart rate.",
		Contraindications: []string{"hypersensitivity"},
		SideEffects:       []string{"tachycardia", "tremor", "nervousness", "headache"},
	},
	"theophylline": {
		Name:              "theophylline",
		Class:             "Methylxanthine",
		Interactions:      []string{"ciprofloxacin", "erythromycin", "cimetidine", "phenytoin", "carbamazepine"},
		FoodInteractions:  []string{"caffeine", "alcohol", "charcoal-broiled foods"},
		Warnings:          "Narrow therapeutic index. Monitor serum levels.",
		Contraindications: []string{"uncontrolled seizures", "active peptic ulcer"},
		SideEffects:       []string{"nausea", "tachycardia", "seizures", "arrhythmias"},
	},
	"phenytoin": {
		Name:              "phenytoin",
		Class:             "Anticonvulsant",
		Interactions:      []string{"warfarin", "digoxin", "oral contraceptives", "folic acid", "carbamazepine"},
		FoodInteractions:  []string{"enteral nutrition", "folic acid rich foods"},
		Warnings:          "Narrow therapeutic index. Monitor serum levels and signs of toxicity.",
		Contraindications: []string{"sinus bradycardia", "heart block"},
		SideEffects:       []string{"gingival hyperplasia", "hirsutism", "ataxia", "nystagmus"},
	},
	"carbamazepine": {
		Name:              "carbamazepine",
		Class:             "Anticonvulsant",
		Interactions:      []string{"warfarin", "oral contraceptives", "clarithromycin", "fluoxetine", "diltiazem"},
		FoodInteractions:  []string{"grapefruit juice"},
		Warnings:          "Risk of aplastic anemia. Monitor CBC regularly.",
		Contraindications: []string{"bone marrow suppression", "AV block"},
		SideEffects:       []string{"diplopia", "ataxia", "nausea", "rash", "hyponatremia"},
	},
	"ibuprofen": {
		Name:              "ibuprofen",
		Class:             "NSAID",
		Interactions:      []string{"warfarin", "ace inhibitors", "lithium", "methotrexate", "digoxin"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Increased cardiovascular and GI risks. Use lowest effective dose.",
		Contraindications: []string{"active GI bleeding", "severe heart failure", "CABG surgery"},
		SideEffects:       []string{"GI upset", "hypertension", "fluid retention", "kidney dysfunction"},
	},
	"naproxen": {
		Name:              "naproxen",
		Class:             "NSAID",
		Interactions:      []string{"warfarin", "ace inhibitors", "lithium", "methotrexate", "cyclosporine"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Increased cardiovascular risk. Monitor kidney function.",
		Contraindications: []string{"active GI bleeding", "severe kidney disease"},
		SideEffects:       []string{"GI bleeding", "hypertension", "edema", "dizziness"},
	},
	"morphine": {
		Name:              "morphine",
		Class:             "Opioid Analgesic",
		Interactions:      []string{"mao inhibitors", "cns depressants", "muscle relaxants", "sedatives"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Risk of respiratory depression and dependence.",
		Contraindications: []string{"respiratory depression", "paralytic ileus"},
		SideEffects:       []string{"respiratory depression", "constipation", "nausea", "sedation"},
	},
	"sertraline": {
		Name:              "sertraline",
		Class:             "SSRI Antidepressant",
		Interactions:      []string{"mao inhibitors", "warfarin", "digoxin", "triptans", "tramadol"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Serotonin syndrome risk. Monitor for suicidal thoughts.",
		Contraindications: []string{"mao inhibitor use", "pimozide use"},
		SideEffects:       []string{"nausea", "diarrhea", "insomnia", "sexual dysfunction"},
	},
	"fluoxetine": {
		Name:              "fluoxetine",
		Class:             "SSRI Antidepressant",
		Interactions:      []string{"mao inhibitors", "warfarin", "phenytoin", "carbamazepine", "triptans"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Long half-life. Serotonin syndrome risk.",
		Contraindications: []string{"mao inhibitor use", "thioridazine use"},
		SideEffects:       []string{"nausea", "headache", "insomnia", "anxiety"},
	},
	"levothyroxine": {
		Name:              "levothyroxine",
		Class:             "Thyroid Hormone",
		Interactions:      []string{"warfarin", "digoxin", "insulin", "iron supplements", "calcium supplements"},
		FoodInteractions:  []string{"soy products", "fiber", "coffee", "calcium-rich foods"},
		Warnings:          "Take on empty stomach. Monitor TSH levels.",
		Contraindications: []string{"uncorrected adrenal insufficiency", "acute MI"},
		SideEffects:       []string{"palpitations", "tremor", "insomnia", "weight loss"},
	},
	"furosemide": {
		Name:              "furosemide",
		Class:             "Loop Diuretic",
		Interactions:      []string{"lithium", "digoxin", "aminoglycosides", "nsaids", "ace inhibitors"},
		FoodInteractions:  []string{"alcohol", "licorice"},
		Warnings:          "Monitor electrolytes, kidney function, and hearing. Risk of dehydration.",
		Contraindications: []string{"anuria", "severe electrolyte depletion"},
		SideEffects:       []string{"hypokalemia", "hyponatremia", "dehydration", "ototoxicity", "hyperuricemia"},
	},
	"hydrochlorothiazide": {
		Name:              "hydrochlorothiazide",
		Class:             "Thiazide Diuretic",
		Interactions:      []string{"lithium", "digoxin", "nsaids", "corticosteroids"},
		FoodInteractions:  []string{"alcohol", "licorice"},
		Warnings:          "Monitor electrolytes and blood glucose. May worsen diabetes.",
		Contraindications: []string{"anuria", "severe kidney disease"},
		SideEffects:       []string{"hypokalemia", "hyperglycemia", "hyperuricemia", "photosensitivity"},
	},
	"spironolactone": {
		Name:              "spironolactone",
		Class:             "Potassium-Sparing Diuretic",
		Interactions:      []string{"ace inhibitors", "potassium supplements", "nsaids", "lithium"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods"},
		Warnings:          "Monitor potassium levels. Risk of hyperkalemia.",
		Contraindications: []string{"hyperkalemia", "severe kidney disease", "addison disease"},
		SideEffects:       []string{"hyperkalemia", "gynecomastia", "menstrual irregularities"},
	},
	"metoprolol": {
		Name:              "metoprolol",
		Class:             "Beta-1 Selective Blocker",
		Interactions:      []string{"verapamil", "diltiazem", "clonidine", "insulin", "epinephrine"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Do not stop abruptly. Monitor heart rate and blood pressure.",
		Contraindications: []string{"severe bradycardia", "heart block", "cardiogenic shock"},
		SideEffects:       []string{"bradycardia", "hypotension", "fatigue", "depression"},
	},
	"propranolol": {
		Name:              "propranolol",
		Class:             "Non-Selective Beta Blocker",
		Interactions:      []string{"verapamil", "diltiazem", "insulin", "theophylline", "lidocaine"},
		FoodInteractions:  []string{"alcohol"},
		Warnings:          "Do not stop abruptly. Avoid in asthma patients.",
		Contraindications: []string{"severe asthma", "severe bradycardia", "heart failure"},
		SideEffects:       []string{"bradycardia", "bronchospasm", "fatigue", "depression"},
	},
	"prednisone": {
		Name:              "prednisone",
		Class:             "Corticosteroid",
		Interactions:      []string{"nsaids", "warfarin", "diabetes medications", "vaccines"},
		FoodInteractions:  []string{"alcohol", "grapefruit juice"},
		Warnings:          "Do not stop abruptly. Monitor blood glucose and bone density.",
		Contraindications: []string{"systemic fungal infections", "live vaccines"},
		SideEffects:       []string{"hyperglycemia", "osteoporosis", "immunosuppression", "mood changes"},
	},
	"digoxin": {
		Name:              "digoxin",
		Class:             "Cardiac Glycoside",
		Interactions:      []string{"diuretics", "amiodarone", "quinidine", "verapamil", "erythromycin"},
		FoodInteractions:  []string{"high fiber foods", "st john wort"},
		Warnings:          "Narrow therapeutic index. Monitor digoxin levels.",
		Contraindications: []string{"ventricular fibrillation", "heart block"},
		SideEffects:       []string{"nausea", "visual disturbances", "arrhythmias", "confusion"},
	},
	"losartan": {
		Name:              "losartan",
		Class:             "ARB (Angiotensin Receptor Blocker)",
		Interactions:      []string{"potassium supplements", "nsaids", "lithium", "rifampin"},
		FoodInteractions:  []string{"salt substitutes", "potassium-rich foods"},
		Warnings:          "Monitor kidney function and potassium levels.",
		Contraindications: []string{"pregnancy", "bilateral renal artery stenosis"},
		SideEffects:       []string{"hyperkalemia", "hypotension", "dizziness", "fatigue"},
	},
	"clopidogrel": {
		Name:              "clopidogrel",
		Class:             "Antiplatelet Agent",
		Interactions:      []string{"warfarin", "omeprazole", "aspirin", "nsaids"},
		FoodInteractions:  []string{"grapefruit juice"},
		Warnings:          "Increased bleeding risk. Avoid proton pump inhibitors.",
		Contraindications: []string{"active bleeding", "severe liver disease"},
		SideEffects:       []string{"bleeding", "bruising", "headache", "diarrhea"},
	},
	"simvastatin": {
		Name:              "simvastatin",
		Class:             "HMG-CoA Reductase Inhibitor",
		Interactions:      []string{"grapefruit juice", "amlodipine", "diltiazem", "verapamil", "clarithromycin"},
		FoodInteractions:  []string{"grapefruit juice", "alcohol"},
		Warnings:          "Monitor liver enzymes and creatine kinase. Risk of myopathy.",
		Contraindications: []string{"active liver disease", "pregnancy"},
		SideEffects:       []string{"myalgia", "elevated liver enzymes", "headache"},
	},
}
