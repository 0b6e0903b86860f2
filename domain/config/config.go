package config

// Config represents the structure of config.yml used by the tool.
// Every lookup table the pipeline depends on (category vocabulary, agent
// allow-list, inventory unit set) lives here and is injected into the
// components at construction, so alternate vocabularies stay testable.
type Config struct {
	DBFile           string `yaml:"db_file"`
	DBSheet          string `yaml:"db_sheet"`
	CoordinatorsFile string `yaml:"coordinators_file"`

	OutputDir      string `yaml:"output_dir"`
	OutputBasename string `yaml:"output_basename"`

	ChunkSize    int    `yaml:"chunk_size"`
	FilterPhrase string `yaml:"filter_phrase"`

	Agents []string `yaml:"agents"`

	Categories []Category `yaml:"categories"`

	InventoryUnits []string `yaml:"inventory_units"`
}

// Category maps one business category to the exact task texts that belong
// to it. Order matters: it fixes the column order of the Issues pivot.
type Category struct {
	Name  string   `yaml:"name"`
	Tasks []string `yaml:"tasks"`
}

// Defaults returns the configuration used when config.yml is absent or
// leaves fields unset.
func Defaults() *Config {
	return &Config{
		DBSheet:        "DB",
		OutputDir:      "output",
		OutputBasename: "Performance",
		ChunkSize:      10000,
		FilterPhrase:   "is currently being processed",
		Agents: []string{
			"SRUGELES", "CAMVELEZ", "JUAHENA", "JUANRUIZ",
			"REGARCI1", "SPINEDAA", "MPEREZPA", "CHREVANS",
		},
		Categories: []Category{
			{Name: "Contract", Tasks: []string{
				"Error Shipto related to Contract",
				"JWS/APEX - Assign Contract",
				"COMMAND - Assign Contract",
				"COMMAND - Process Error Shipto/Contract",
				"JWS/APEX - Process Error Shipto/Contract",
			}},
			{Name: "Pricing", Tasks: []string{
				"COMMAND - Pricing Incomplete",
				"JWS/APEX - Pricing Incomplete",
				"JWS/APEX - Shipment cost not transferred",
				"COMMAND - Shipment cost not transferred",
				"No Accounting Document for Billing Doc",
			}},
			{Name: "Interface", Tasks: []string{
				"JWS/APEX - Interface Errors",
				"COMMAND - Interface Errors",
				"JWS/APEX - Process Valuation type error",
			}},
			{Name: "Incomplete", Tasks: []string{
				"JWS/APEX - Incomplete Deliveries",
				"JWS/APEX - Incomplete Orders",
				"JWS/APEX - Ticket Inco Terms",
				"COMMAND - Incomplete Orders",
				"COMMAND - Ticket Inco Terms",
				"COMMAND - Incomplete Deliveries",
			}},
			{Name: "STPO", Tasks: []string{
				"JWS/APEX - STPO Errors",
			}},
			{Name: "Inventory", Tasks: []string{
				"COMMAND - Ticket not Goods Issued",
				"JWS/APEX - Ticket not Goods Issued",
			}},
		},
		InventoryUnits: []string{"TO", "M3", "EA"},
	}
}

// CategoryNames returns the configured category names plus the implicit
// fallback "Other", in pivot column order.
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories)+1)
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return append(names, "Other")
}

// Vocabulary returns the task texts configured for one category, or nil
// when the category is unknown.
func (c *Config) Vocabulary(name string) []string {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat.Tasks
		}
	}
	return nil
}
