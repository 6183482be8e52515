package bridge

import "fmt"

// Variant represents a bridge configuration
type Variant string

const (
	// VariantRendered renders engine results into display text
	VariantRendered Variant = "user"
	// VariantRaw returns engine results without rendering
	VariantRaw Variant = "agent"
)

// ParseVariant parses variant name
func ParseVariant(name string) (Variant, error) {
	switch Variant(name) {
	case VariantRendered, VariantRaw:
		return Variant(name), nil
	case "":
		return VariantRendered, nil
	}
	return "", fmt.Errorf("unsupported variant: %v", name)
}
