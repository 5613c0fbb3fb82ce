package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Record:
		o.printRecord(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Location response type (matches API)
type Location struct {
	Kind string `json:"kind"`
	X    uint32 `json:"x,omitempty"`
	Y    uint32 `json:"y,omitempty"`
}

// Car response type
type Car struct {
	Kind  string `json:"kind"`
	Model string `json:"model"`
	Price uint32 `json:"price"`
	Color string `json:"color"`
}

// Record response type
type Record struct {
	Authority string   `json:"authority"`
	Name      string   `json:"name"`
	Location  Location `json:"location"`
	Car       Car      `json:"car"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printRecord(r Record) {
	fmt.Printf("Name: %s\n", r.Name)
	fmt.Printf("Authority: %s\n", r.Authority)
	if r.Location.Kind == "point" {
		fmt.Printf("Location: point (%d, %d)\n", r.Location.X, r.Location.Y)
	} else {
		fmt.Printf("Location: %s\n", r.Location.Kind)
	}
	fmt.Printf("Car: %s %s, %d, %s\n", r.Car.Color, r.Car.Kind, r.Car.Price, r.Car.Model)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
