package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record management commands",
	}

	cmd.AddCommand(newRecordInitCmd())
	cmd.AddCommand(newRecordGetCmd())
	cmd.AddCommand(newRecordSetLocationCmd())
	cmd.AddCommand(newRecordSetCarCmd())

	return cmd
}

// locationFlags holds the --loc/--x/--y flag values
type locationFlags struct {
	kind string
	x    uint32
	y    uint32
}

func (f *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "loc", "", "Location: up, down, left, right, point")
	cmd.Flags().Uint32Var(&f.x, "x", 0, "X coordinate (point only)")
	cmd.Flags().Uint32Var(&f.y, "y", 0, "Y coordinate (point only)")
}

func (f *locationFlags) payload() (Location, error) {
	switch f.kind {
	case "up", "down", "left", "right":
		return Location{Kind: f.kind}, nil
	case "point":
		return Location{Kind: "point", X: f.x, Y: f.y}, nil
	default:
		return Location{}, fmt.Errorf("--loc must be up, down, left, right or point")
	}
}

// carFlags holds the --car/--model/--price/--color flag values
type carFlags struct {
	kind  string
	model string
	price uint32
	color string
}

func (f *carFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "car", "", "Car kind: suv, hatchback")
	cmd.Flags().StringVar(&f.model, "model", "", "Car model name")
	cmd.Flags().Uint32Var(&f.price, "price", 0, "Car price")
	cmd.Flags().StringVar(&f.color, "color", "", "Car color: red, green")
}

func (f *carFlags) payload() (Car, error) {
	if f.kind != "suv" && f.kind != "hatchback" {
		return Car{}, fmt.Errorf("--car must be suv or hatchback")
	}
	if f.color != "red" && f.color != "green" {
		return Car{}, fmt.Errorf("--color must be red or green")
	}
	return Car{Kind: f.kind, Model: f.model, Price: f.price, Color: f.color}, nil
}

func newRecordInitCmd() *cobra.Command {
	var name string
	var loc locationFlags
	var car carFlags

	cmd := &cobra.Command{
		Use:   "init <address>",
		Short: "Create a record at an address, owned by the signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locPayload, err := loc.payload()
			if err != nil {
				return err
			}
			carPayload, err := car.payload()
			if err != nil {
				return err
			}

			req := map[string]any{
				"name":     name,
				"location": locPayload,
				"car":      carPayload,
			}
			var result Record

			if err := client.Post("/api/v1/records/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Record name (required)")
	_ = cmd.MarkFlagRequired("name")
	loc.register(cmd)
	car.register(cmd)

	return cmd
}

func newRecordGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <address>",
		Short: "Fetch the record at an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Record

			if err := client.Get("/api/v1/records/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRecordSetLocationCmd() *cobra.Command {
	var loc locationFlags

	cmd := &cobra.Command{
		Use:   "set-location <address>",
		Short: "Replace the location of the record at an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locPayload, err := loc.payload()
			if err != nil {
				return err
			}

			req := map[string]any{"location": locPayload}
			var result Record

			if err := client.Put("/api/v1/records/"+args[0]+"/location", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	loc.register(cmd)

	return cmd
}

func newRecordSetCarCmd() *cobra.Command {
	var car carFlags

	cmd := &cobra.Command{
		Use:   "set-car <address>",
		Short: "Replace the car of the record at an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			carPayload, err := car.payload()
			if err != nil {
				return err
			}

			req := map[string]any{"car": carPayload}
			var result Record

			if err := client.Put("/api/v1/records/"+args[0]+"/car", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	car.register(cmd)

	return cmd
}
