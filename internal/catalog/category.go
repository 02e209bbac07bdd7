package catalog

// Category identifies one slot of an assembly. A selection holds at most one
// component per category.
type Category string

const (
	CategoryBase      Category = "base"
	CategoryMounting  Category = "mounting"
	CategoryPower     Category = "power"
	CategoryControl   Category = "control"
	CategorySensor    Category = "sensor"
	CategoryActuator  Category = "actuator"
	CategoryInterface Category = "interface"
	CategoryHousing   Category = "housing"
)

// stepOrders defines the assembly/display sequence for each category.
var stepOrders = map[Category]int{
	CategoryBase:      10,
	CategoryMounting:  20,
	CategoryPower:     30,
	CategoryControl:   40,
	CategorySensor:    50,
	CategoryActuator:  60,
	CategoryInterface: 70,
	CategoryHousing:   80,
}

// displayNames maps categories to their human-readable names.
var displayNames = map[Category]string{
	CategoryBase:      "Base Platform",
	CategoryMounting:  "Mounting",
	CategoryPower:     "Power Supply",
	CategoryControl:   "Control Unit",
	CategorySensor:    "Sensor",
	CategoryActuator:  "Actuator",
	CategoryInterface: "Interface",
	CategoryHousing:   "Housing",
}

// StepOrder returns the assembly sequence number for the category.
// Unknown categories sort last.
func (c Category) StepOrder() int {
	if order, ok := stepOrders[c]; ok {
		return order
	}
	return 1 << 30
}

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// IsValid reports whether the category is one of the known slots.
func (c Category) IsValid() bool {
	_, ok := stepOrders[c]
	return ok
}

// AllCategories returns every category in assembly step order.
func AllCategories() []Category {
	return []Category{
		CategoryBase,
		CategoryMounting,
		CategoryPower,
		CategoryControl,
		CategorySensor,
		CategoryActuator,
		CategoryInterface,
		CategoryHousing,
	}
}

// ParseCategory resolves user input (CLI argument, API path segment) to a
// known category. The second return is false for unrecognized input.
func ParseCategory(s string) (Category, bool) {
	c := Category(normalizeCategoryInput(s))
	if c.IsValid() {
		return c, true
	}
	return "", false
}

func normalizeCategoryInput(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'A' && b <= 'Z' {
			b += 32
		}
		if b == ' ' || b == '-' {
			b = '_'
		}
		out = append(out, b)
	}
	return string(out)
}
