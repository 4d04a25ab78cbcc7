package formfield_test

import (
	"fmt"

	"github.com/goliatone/go-formfield"
)

func ExampleFromRecord() {
	field, err := formfield.FromRecord(map[string]string{
		"id":             "12",
		"name":           "request_type",
		"required":       "1",
		"values":         `["Incident","Request"]`,
		"default_values": "Request",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	answer := " l'incident "
	field.ParseAnswerValues(map[string]*string{"formcreator_field_12": &answer})
	fmt.Println(field.SerializeValue())
	fmt.Println(field.ValueForTargetText(false))
	fmt.Println(field.IsValid())
	// Output:
	// l\'incident
	// l'incident
	// true
}
