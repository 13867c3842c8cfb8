/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package registry

// Builtin returns the compiled-in registry tables. Costs are in Indian
// rupees as charged by common diagnostic chains; validity windows follow
// how quickly each marker is expected to change.
func Builtin() Tables {
	return Tables{
		DefaultCost:         DefaultCost,
		DefaultValidityDays: DefaultValidityDays,
		Tests:               builtinTests(),
		Aliases:             builtinAliases(),
	}
}

func builtinTests() []TestDefinition {
	return []TestDefinition{
		// ===== BLOOD: stable markers (3-6 months) =====
		{CanonicalName: "HbA1c", CostUnits: 700, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "Lipid Profile", CostUnits: 1000, ValidityDays: 180, Category: CategoryBlood},
		{CanonicalName: "LDL Cholesterol", CostUnits: 350, ValidityDays: 180, Category: CategoryBlood},
		{CanonicalName: "HDL Cholesterol", CostUnits: 350, ValidityDays: 180, Category: CategoryBlood},
		{CanonicalName: "Total Cholesterol", CostUnits: 350, ValidityDays: 180, Category: CategoryBlood},
		{CanonicalName: "Triglycerides", CostUnits: 350, ValidityDays: 180, Category: CategoryBlood},
		{CanonicalName: "Thyroid Panel", CostUnits: 800, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "TSH", CostUnits: 350, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "T3", CostUnits: 300, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "T4", CostUnits: 300, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "Vitamin D", CostUnits: 1200, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "Vitamin B12", CostUnits: 800, ValidityDays: 90, Category: CategoryBlood},

		// ===== BLOOD: dynamic markers (about a month) =====
		{CanonicalName: "CBC", CostUnits: 500, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Complete Blood Count", CostUnits: 500, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Hemoglobin", CostUnits: 150, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Blood Sugar Fasting", CostUnits: 100, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Fasting Blood Sugar", CostUnits: 100, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Random Blood Sugar", CostUnits: 100, ValidityDays: 7, Category: CategoryBlood},
		{CanonicalName: "Blood Sugar PP", CostUnits: 100, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Liver Function Test", CostUnits: 900, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "LFT", CostUnits: 900, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Kidney Function Test", CostUnits: 850, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "KFT", CostUnits: 850, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Creatinine", CostUnits: 250, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Urea", CostUnits: 200, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Electrolytes", CostUnits: 500, ValidityDays: 30, Category: CategoryBlood},
		{CanonicalName: "Uric Acid", CostUnits: 250, ValidityDays: 60, Category: CategoryBlood},

		// ===== BLOOD: no dedicated window =====
		{CanonicalName: "HBA1C", CostUnits: 700, Category: CategoryBlood},
		{CanonicalName: "Iron Studies", CostUnits: 600, Category: CategoryBlood},
		{CanonicalName: "Ferritin", CostUnits: 500, Category: CategoryBlood},
		{CanonicalName: "ESR", CostUnits: 150, Category: CategoryBlood},
		{CanonicalName: "CRP", CostUnits: 400, Category: CategoryBlood},
		{CanonicalName: "Calcium", CostUnits: 200, Category: CategoryBlood},
		{CanonicalName: "Phosphorus", CostUnits: 200, Category: CategoryBlood},
		{CanonicalName: "Magnesium", CostUnits: 300, Category: CategoryBlood},
		{CanonicalName: "Sodium", CostUnits: 150, Category: CategoryBlood},
		{CanonicalName: "Potassium", CostUnits: 150, Category: CategoryBlood},
		{CanonicalName: "Chloride", CostUnits: 150, Category: CategoryBlood},
		{CanonicalName: "VLDL", CostUnits: 250, Category: CategoryBlood},
		{CanonicalName: "Prothrombin Time", CostUnits: 400, Category: CategoryBlood},
		{CanonicalName: "PT INR", CostUnits: 400, Category: CategoryBlood},
		{CanonicalName: "APTT", CostUnits: 400, Category: CategoryBlood},
		{CanonicalName: "D-Dimer", CostUnits: 1500, Category: CategoryBlood},
		{CanonicalName: "Troponin", CostUnits: 1200, Category: CategoryBlood},
		{CanonicalName: "BNP", CostUnits: 2000, Category: CategoryBlood},

		// ===== TUMOR MARKERS (3 months) =====
		{CanonicalName: "PSA", CostUnits: 800, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "CA-125", CostUnits: 1500, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "AFP", CostUnits: 800, ValidityDays: 90, Category: CategoryBlood},
		{CanonicalName: "CEA", CostUnits: 1000, ValidityDays: 90, Category: CategoryBlood},

		// ===== URINE (2 weeks) =====
		{CanonicalName: "Urine Routine", CostUnits: 200, ValidityDays: 14, Category: CategoryUrine},
		{CanonicalName: "Urine Culture", CostUnits: 600, ValidityDays: 14, Category: CategoryUrine},
		{CanonicalName: "Microalbumin", CostUnits: 500, Category: CategoryUrine},
		{CanonicalName: "24 Hour Urine Protein", CostUnits: 400, Category: CategoryUrine},

		// ===== IMAGING (6-12 months) =====
		{CanonicalName: "X-Ray Chest", CostUnits: 600, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "X-Ray", CostUnits: 500, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "Ultrasound Abdomen", CostUnits: 1200, ValidityDays: 180, Category: CategoryImaging},
		{CanonicalName: "Ultrasound", CostUnits: 1000, ValidityDays: 180, Category: CategoryImaging},
		{CanonicalName: "ECG", CostUnits: 400, ValidityDays: 180, Category: CategoryImaging},
		{CanonicalName: "Echo", CostUnits: 2500, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "Echocardiography", CostUnits: 2500, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "CT Scan", CostUnits: 5000, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "MRI", CostUnits: 8000, ValidityDays: 365, Category: CategoryImaging},
		{CanonicalName: "PET Scan", CostUnits: 25000, Category: CategoryImaging},
		{CanonicalName: "Mammography", CostUnits: 2000, Category: CategoryImaging},
		{CanonicalName: "Bone Density", CostUnits: 2500, Category: CategoryImaging},
		{CanonicalName: "DEXA Scan", CostUnits: 2500, Category: CategoryImaging},

		// ===== OTHER =====
		{CanonicalName: "Stool Test", CostUnits: 300, Category: CategoryOther},
		{CanonicalName: "Stool Culture", CostUnits: 600, Category: CategoryOther},
		{CanonicalName: "Sputum Test", CostUnits: 300, Category: CategoryOther},
		{CanonicalName: "COVID-19 RT-PCR", CostUnits: 500, Category: CategoryOther},
		{CanonicalName: "Dengue NS1", CostUnits: 600, Category: CategoryOther},
		{CanonicalName: "Malaria Test", CostUnits: 400, Category: CategoryOther},
		{CanonicalName: "Typhoid Test", CostUnits: 400, Category: CategoryOther},
		{CanonicalName: "Widal Test", CostUnits: 300, Category: CategoryOther},
	}
}

func builtinAliases() []AliasEntry {
	return []AliasEntry{
		{Alias: "complete blood count", CanonicalName: "CBC"},
		{Alias: "cbc", CanonicalName: "CBC"},
		{Alias: "blood count", CanonicalName: "CBC"},
		{Alias: "hemogram", CanonicalName: "CBC"},
		{Alias: "hba1c", CanonicalName: "HbA1c"},
		{Alias: "glycated hemoglobin", CanonicalName: "HbA1c"},
		{Alias: "glycosylated hemoglobin", CanonicalName: "HbA1c"},
		{Alias: "hb a1c", CanonicalName: "HbA1c"},
		{Alias: "lipid panel", CanonicalName: "Lipid Profile"},
		{Alias: "lipids", CanonicalName: "Lipid Profile"},
		{Alias: "cholesterol test", CanonicalName: "Lipid Profile"},
		{Alias: "thyroid function test", CanonicalName: "Thyroid Panel"},
		{Alias: "tft", CanonicalName: "Thyroid Panel"},
		{Alias: "thyroid profile", CanonicalName: "Thyroid Panel"},
		{Alias: "liver function test", CanonicalName: "Liver Function Test"},
		{Alias: "lft", CanonicalName: "Liver Function Test"},
		{Alias: "liver panel", CanonicalName: "Liver Function Test"},
		{Alias: "kidney function test", CanonicalName: "Kidney Function Test"},
		{Alias: "kft", CanonicalName: "Kidney Function Test"},
		{Alias: "renal function test", CanonicalName: "Kidney Function Test"},
		{Alias: "rft", CanonicalName: "Kidney Function Test"},
		{Alias: "fasting blood sugar", CanonicalName: "Fasting Blood Sugar"},
		{Alias: "fbs", CanonicalName: "Fasting Blood Sugar"},
		{Alias: "fasting glucose", CanonicalName: "Fasting Blood Sugar"},
		{Alias: "random blood sugar", CanonicalName: "Random Blood Sugar"},
		{Alias: "rbs", CanonicalName: "Random Blood Sugar"},
		{Alias: "pp blood sugar", CanonicalName: "Blood Sugar PP"},
		{Alias: "postprandial blood sugar", CanonicalName: "Blood Sugar PP"},
		{Alias: "ppbs", CanonicalName: "Blood Sugar PP"},
		{Alias: "chest x-ray", CanonicalName: "X-Ray Chest"},
		{Alias: "chest xray", CanonicalName: "X-Ray Chest"},
		{Alias: "cxr", CanonicalName: "X-Ray Chest"},
		{Alias: "electrocardiogram", CanonicalName: "ECG"},
		{Alias: "ekg", CanonicalName: "ECG"},
		{Alias: "echocardiogram", CanonicalName: "Echocardiography"},
		{Alias: "2d echo", CanonicalName: "Echocardiography"},
	}
}

var builtin *Registry

func init() {
	r, err := New(Builtin())
	if err != nil {
		panic(err)
	}

	builtin = r
}

// Default returns the registry built from the compiled-in tables.
func Default() *Registry {
	return builtin
}
