package catalog

import "github.com/shopspring/decimal"

// d parses a literal price. Seed values are compile-time constants, so a
// parse failure is a programming error and panics at init.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(n int) *int { return &n }

// SeedComponents returns the sample component catalog: three components per
// category across the eight assembly categories.
func SeedComponents() []Component {
	return []Component{
		// Base platforms
		{
			ID:                "base-001",
			Name:              "Standard Rail Platform",
			Category:          CategoryBase,
			Description:       "General purpose DIN rail platform for indoor assemblies",
			BasePrice:         d("1250.00"),
			Specs:             map[string]string{"width_mm": "600", "load_kg": "40"},
			CompatibilityTags: NewTagSet("rail", "din", "indoor"),
		},
		{
			ID:                "base-002",
			Name:              "Heavy Duty Frame",
			Category:          CategoryBase,
			Description:       "Welded steel frame rated for outdoor and high-vibration duty",
			BasePrice:         d("2480.00"),
			Specs:             map[string]string{"width_mm": "900", "load_kg": "220"},
			CompatibilityTags: NewTagSet("frame", "outdoor", "heavy"),
		},
		{
			ID:                "base-003",
			Name:              "Compact Bench Base",
			Category:          CategoryBase,
			Description:       "Small footprint base for lab and bench installations",
			BasePrice:         d("690.00"),
			Specs:             map[string]string{"width_mm": "300", "load_kg": "15"},
			CompatibilityTags: NewTagSet("bench", "din", "indoor", "compact"),
		},

		// Mounting
		{
			ID:                "mount-001",
			Name:              "DIN Rail Kit",
			Category:          CategoryMounting,
			Description:       "Standard 35mm DIN rail mounting kit",
			BasePrice:         d("320.00"),
			CompatibilityTags: NewTagSet("din", "rail"),
		},
		{
			ID:                "mount-002",
			Name:              "Pole Mount Bracket",
			Category:          CategoryMounting,
			Description:       "Galvanized bracket for pole and mast installation",
			BasePrice:         d("410.00"),
			CompatibilityTags: NewTagSet("pole", "outdoor"),
		},
		{
			ID:                "mount-003",
			Name:              "Vibration Damped Mount",
			Category:          CategoryMounting,
			Description:       "Elastomer-damped mount for high-vibration environments",
			BasePrice:         d("560.00"),
			CompatibilityTags: NewTagSet("damped", "heavy", "outdoor"),
		},

		// Power
		{
			ID:                "pwr-001",
			Name:              "24V DC Supply",
			Category:          CategoryPower,
			Description:       "120W regulated 24V DC power supply",
			BasePrice:         d("180.00"),
			Specs:             map[string]string{"output": "24VDC", "watts": "120"},
			CompatibilityTags: NewTagSet("24v", "dc"),
		},
		{
			ID:                "pwr-002",
			Name:              "48V Industrial Supply",
			Category:          CategoryPower,
			Description:       "480W industrial 48V DC power supply",
			BasePrice:         d("260.00"),
			Specs:             map[string]string{"output": "48VDC", "watts": "480"},
			CompatibilityTags: NewTagSet("48v", "dc", "industrial"),
		},
		{
			ID:                "pwr-003",
			Name:              "Battery Pack",
			Category:          CategoryPower,
			Description:       "Rechargeable battery pack for portable assemblies",
			BasePrice:         d("340.00"),
			Specs:             map[string]string{"output": "24VDC", "capacity_wh": "500"},
			CompatibilityTags: NewTagSet("battery", "dc", "portable", "24v"),
		},

		// Control
		{
			ID:                "ctrl-001",
			Name:              "Basic PLC",
			Category:          CategoryControl,
			Description:       "Entry level PLC with Modbus RTU",
			BasePrice:         d("540.00"),
			CompatibilityTags: NewTagSet("plc", "modbus"),
		},
		{
			ID:                "ctrl-002",
			Name:              "Edge Controller",
			Category:          CategoryControl,
			Description:       "Linux edge controller with Ethernet and MQTT",
			BasePrice:         d("890.00"),
			CompatibilityTags: NewTagSet("edge", "ethernet", "mqtt"),
		},
		{
			ID:                "ctrl-003",
			Name:              "Safety Controller",
			Category:          CategoryControl,
			Description:       "SIL2 rated safety controller",
			BasePrice:         d("1120.00"),
			CompatibilityTags: NewTagSet("safety", "plc"),
		},

		// Sensors
		{
			ID:                "sens-001",
			Name:              "Temperature Probe",
			Category:          CategorySensor,
			Description:       "PT100 temperature probe, analog output",
			BasePrice:         d("85.00"),
			CompatibilityTags: NewTagSet("temperature", "analog"),
		},
		{
			ID:                "sens-002",
			Name:              "Proximity Sensor",
			Category:          CategorySensor,
			Description:       "Inductive proximity sensor, digital output",
			BasePrice:         d("120.00"),
			CompatibilityTags: NewTagSet("proximity", "digital"),
		},
		{
			ID:                "sens-003",
			Name:              "Vision Camera",
			Category:          CategorySensor,
			Description:       "GigE vision camera for inspection tasks",
			BasePrice:         d("980.00"),
			CompatibilityTags: NewTagSet("vision", "ethernet"),
		},

		// Actuators
		{
			ID:                "act-001",
			Name:              "Linear Actuator",
			Category:          CategoryActuator,
			Description:       "24V linear actuator, 500N thrust",
			BasePrice:         d("450.00"),
			CompatibilityTags: NewTagSet("linear", "24v"),
		},
		{
			ID:                "act-002",
			Name:              "Servo Drive",
			Category:          CategoryActuator,
			Description:       "48V servo drive with integrated encoder",
			BasePrice:         d("720.00"),
			CompatibilityTags: NewTagSet("servo", "48v"),
		},
		{
			ID:                "act-003",
			Name:              "Pneumatic Valve Bank",
			Category:          CategoryActuator,
			Description:       "Four-station pneumatic valve bank",
			BasePrice:         d("380.00"),
			CompatibilityTags: NewTagSet("pneumatic"),
		},

		// Interfaces
		{
			ID:                "int-001",
			Name:              "Touch Panel",
			Category:          CategoryInterface,
			Description:       "7 inch HMI touch panel",
			BasePrice:         d("610.00"),
			CompatibilityTags: NewTagSet("hmi", "touch"),
		},
		{
			ID:                "int-002",
			Name:              "Ethernet Gateway",
			Category:          CategoryInterface,
			Description:       "Fieldbus to Ethernet gateway",
			BasePrice:         d("290.00"),
			CompatibilityTags: NewTagSet("ethernet", "gateway"),
		},
		{
			ID:                "int-003",
			Name:              "Wireless Module",
			Category:          CategoryInterface,
			Description:       "Industrial WiFi and BLE module",
			BasePrice:         d("240.00"),
			CompatibilityTags: NewTagSet("wireless"),
		},

		// Housings
		{
			ID:                "house-001",
			Name:              "Standard Enclosure",
			Category:          CategoryHousing,
			Description:       "IP54 sheet steel enclosure for indoor use",
			BasePrice:         d("330.00"),
			CompatibilityTags: NewTagSet("ip54", "indoor"),
		},
		{
			ID:                "house-002",
			Name:              "Outdoor Enclosure",
			Category:          CategoryHousing,
			Description:       "IP66 enclosure with UV resistant coating",
			BasePrice:         d("520.00"),
			CompatibilityTags: NewTagSet("ip66", "outdoor"),
		},
		{
			ID:                "house-003",
			Name:              "Climate Controlled Enclosure",
			Category:          CategoryHousing,
			Description:       "IP66 enclosure with integrated heating and cooling",
			BasePrice:         d("1480.00"),
			CompatibilityTags: NewTagSet("ip66", "climate", "outdoor"),
		},
	}
}

// SeedCompatibilityRules returns the sample compatibility rules. Source and
// category pairs without a rule are deliberately permissive.
func SeedCompatibilityRules() []CompatibilityRule {
	return []CompatibilityRule{
		{
			ID:                "compat-001",
			SourceComponentID: "base-001",
			TargetCategory:    CategoryMounting,
			RequiredTags:      NewTagSet("din"),
		},
		{
			ID:                "compat-002",
			SourceComponentID: "base-002",
			TargetCategory:    CategoryMounting,
			RequiredTags:      NewTagSet("outdoor"),
		},
		{
			ID:                "compat-003",
			SourceComponentID: "base-002",
			TargetCategory:    CategoryMounting,
			RequiredTags:      NewTagSet("damped"),
		},
		{
			ID:                "compat-004",
			SourceComponentID: "base-003",
			TargetCategory:    CategoryMounting,
			RequiredTags:      NewTagSet("din"),
		},
		{
			ID:                "compat-005",
			SourceComponentID: "base-003",
			TargetCategory:    CategoryHousing,
			ExcludedTags:      NewTagSet("outdoor"),
		},
		{
			ID:                "compat-006",
			SourceComponentID: "pwr-001",
			TargetCategory:    CategoryActuator,
			RequiredTags:      NewTagSet("24v"),
		},
		{
			ID:                "compat-007",
			SourceComponentID: "pwr-002",
			TargetCategory:    CategoryActuator,
			RequiredTags:      NewTagSet("48v"),
		},
		{
			ID:                "compat-008",
			SourceComponentID: "base-002",
			TargetCategory:    CategoryHousing,
			RequiredTags:      NewTagSet("outdoor"),
		},
		{
			ID:                "compat-009",
			SourceComponentID: "ctrl-003",
			TargetCategory:    CategoryActuator,
			ExcludedTags:      NewTagSet("pneumatic"),
		},
		{
			ID:                "compat-010",
			SourceComponentID: "sens-003",
			TargetCategory:    CategoryInterface,
			RequiredTags:      NewTagSet("ethernet"),
		},
	}
}

// SeedPricingRules returns the sample pricing rules in declaration order.
// The order is significant: adjustments fold left to right.
func SeedPricingRules() []PricingRule {
	return []PricingRule{
		{
			ID:   "price-001",
			Name: "Climate enclosure handling surcharge",
			Type: RuleTypeSurcharge,
			Condition: PricingCondition{
				ComponentIDs: []string{"house-003"},
			},
			Adjustment: PriceAdjustment{
				Type:  AdjustmentFixedAmount,
				Value: d("500.00"),
			},
		},
		{
			ID:   "price-002",
			Name: "Full assembly bundle",
			Type: RuleTypeBundleDiscount,
			Condition: PricingCondition{
				Categories:  AllCategories(),
				RequiresAll: true,
			},
			Adjustment: PriceAdjustment{
				Type:  AdjustmentPercentage,
				Value: d("-8"),
			},
		},
		{
			ID:   "price-003",
			Name: "Safety package discount",
			Type: RuleTypeDiscount,
			Condition: PricingCondition{
				ComponentIDs: []string{"ctrl-003", "sens-002"},
				RequiresAll:  true,
			},
			Adjustment: PriceAdjustment{
				Type:  AdjustmentPercentage,
				Value: d("-5"),
			},
		},
		{
			ID:   "price-004",
			Name: "Volume builder discount",
			Type: RuleTypeVolumeDiscount,
			Condition: PricingCondition{
				MinimumQuantity: intPtr(5),
			},
			Adjustment: PriceAdjustment{
				Type:  AdjustmentPercentage,
				Value: d("-3"),
			},
		},
		{
			ID:   "price-005",
			Name: "Outdoor kit discount",
			Type: RuleTypeDiscount,
			Condition: PricingCondition{
				ComponentIDs: []string{"base-002", "house-002"},
				RequiresAll:  true,
			},
			Adjustment: PriceAdjustment{
				Type:  AdjustmentFixedAmount,
				Value: d("-150.00"),
			},
		},
	}
}

// SeedCatalog assembles the full sample catalog.
func SeedCatalog() *Catalog {
	return New(SeedComponents(), SeedCompatibilityRules(), SeedPricingRules())
}
