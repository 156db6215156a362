package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var simulationValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations by wire field name rather than Go struct name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSimulation checks a parsed simulation against the full schema:
// required fields, enum membership and element-level constraints. It
// returns nil on success, or an error describing the first structural
// violation. Validation is all-or-nothing; there is no partial acceptance.
func ValidateSimulation(sim *Simulation) error {
	if sim == nil {
		return fmt.Errorf("simulation is nil")
	}
	err := simulationValidator.Struct(sim)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Errorf("campo %s: violación de la regla %q", first.Namespace(), first.Tag())
	}
	return err
}
