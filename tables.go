package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tables holds the fixed classification vocabularies: the two reason-code
// maps, the color-code set and the SKU exception set. Any change to these
// changes classification behavior, so the compiled-in defaults can be
// overridden with a reviewed YAML file.
type Tables struct {
	RepairCodes   map[string]ErrorSource `yaml:"repair_codes"`
	RecutCodes    map[string]ErrorSource `yaml:"recut_codes"`
	ColorCodes    []string               `yaml:"color_codes"`
	SKUExceptions []string               `yaml:"sku_exceptions"`

	colorSet       map[string]bool
	exceptionSet   map[string]bool
	recutCodeLower map[string]ErrorSource
}

// DefaultTables returns the vocabularies the rework tracker sheets use today.
func DefaultTables() *Tables {
	t := &Tables{
		RepairCodes: map[string]ErrorSource{
			// Cutting operator
			"A1A": CuttingOperatorError,
			"A1B": CuttingOperatorError,
			"A1C": CuttingOperatorError,
			"A1D": CuttingOperatorError,
			// Sewing operator
			"A2A": SewingOperatorError,
			"A2D": SewingOperatorError,
			"S1":  SewingOperatorError,
			"S2":  SewingOperatorError,
			"S3":  SewingOperatorError,
			"S4":  SewingOperatorError,
			"S5":  SewingOperatorError,
			"S6":  SewingOperatorError,
			"S8":  SewingOperatorError,
			// Cutting machine (hot cut, laser, cold cut, die clicker/Gerber)
			"A1":  CuttingMachineError,
			"B1C": CuttingMachineError,
			"B1E": CuttingMachineError,
			// Sewing machine (sewing machine, AMS)
			"A":  SewingMachineError,
			"B2": SewingMachineError,
			// Other machine
			"B3": OtherMachineError,
			// Material defects
			"C1": MaterialDefect,
			"C2": MaterialDefect,
			"C3": MaterialDefect,
		},
		RecutCodes: map[string]ErrorSource{
			// Sewing operator
			"A":            SewingOperatorError,
			"A: SMO Error": SewingOperatorError,
			"A: SMO ERROR": SewingOperatorError,
			// Cutting machine (laser)
			"L":              CuttingMachineError,
			"L: Lazer error": CuttingMachineError,
			// Sewing machine (AMS)
			"AMS":            SewingMachineError,
			"AMS: AMS error": SewingMachineError,
			// Other machine
			"A*":               OtherMachineError,
			"A* Machine Error": OtherMachineError,
			// Cutting operator
			"B":                         CuttingOperatorError,
			"B: Wrong Material Cut":     CuttingOperatorError,
			"C":                         CuttingOperatorError,
			"c":                         CuttingOperatorError,
			"C: Marking error":          CuttingOperatorError,
			"F":                         CuttingOperatorError,
			"F: Material Cut Too Short": CuttingOperatorError,
			// Material defects
			"D":                  MaterialDefect,
			"D: Material Defect": MaterialDefect,
			// Other
			"E":                 OtherError,
			"E: Missing Pieces": OtherError,
			"P":                 OtherError,
			"P: PA Error":       OtherError,
			"A/D":               OtherError,
		},
		ColorCodes: []string{
			"BK", "CB", "MC", "MA", "MB", "MT", "RG", "WD", "WG",
			"TB", "TD", "TJ", "RD", "ML", "NG", "NP", "RT",
		},
		SKUExceptions: []string{
			"PI-CB",     // CB is part of the product name, not a color
			"MI-556-TR", // TR is not a color code
			"MI-556-SN", // SN is not a color code
		},
	}
	t.compile()
	return t
}

// LoadTables reads a YAML override file. Sections left empty in the file keep
// the compiled-in defaults, so an override can replace just one vocabulary.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse tables yaml: %w", err)
	}

	t := DefaultTables()
	if len(override.RepairCodes) > 0 {
		t.RepairCodes = override.RepairCodes
	}
	if len(override.RecutCodes) > 0 {
		t.RecutCodes = override.RecutCodes
	}
	if len(override.ColorCodes) > 0 {
		t.ColorCodes = override.ColorCodes
	}
	if len(override.SKUExceptions) > 0 {
		t.SKUExceptions = override.SKUExceptions
	}
	t.compile()
	return t, nil
}

func (t *Tables) compile() {
	t.colorSet = make(map[string]bool, len(t.ColorCodes))
	for _, c := range t.ColorCodes {
		t.colorSet[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	t.exceptionSet = make(map[string]bool, len(t.SKUExceptions))
	for _, s := range t.SKUExceptions {
		t.exceptionSet[strings.TrimSpace(s)] = true
	}
	t.recutCodeLower = make(map[string]ErrorSource, len(t.RecutCodes))
	for k, v := range t.RecutCodes {
		t.recutCodeLower[strings.ToLower(k)] = v
	}
}

func (t *Tables) isColorCode(segment string) bool {
	return t.colorSet[strings.ToUpper(segment)]
}

func (t *Tables) isExceptionSKU(sku string) bool {
	return t.exceptionSet[sku]
}
