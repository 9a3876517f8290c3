package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/veriscan-io/veriscan-cli/internal/domain/client"
	"github.com/veriscan-io/veriscan-cli/internal/domain/entity"
	sharedErrors "github.com/veriscan-io/veriscan-cli/internal/shared/errors"
)

// clientOutput is used for JSON output
type clientOutput struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Entity    *entity.CanonicalEntity `json:"entity,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at,omitempty"`
}

func clientToOutput(c *client.Client) clientOutput {
	return clientOutput{
		ID:        c.ID(),
		Name:      c.Name(),
		Entity:    c.Entity(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage client profiles and their canonical entity data",
}

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new client profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return errors.New("--name is required")
		}

		c, err := container.ClientService.CreateClient(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		fmt.Printf("%s client %s (id=%s)\n", colorSuccess("Created"), name, c.ID())
		fmt.Printf("%s Set the entity profile next: veriscan client set-entity --id %s --file entity.json\n", colorInfo("→"), c.ID())
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		clients, err := container.ClientService.ListClients(ctx)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		outputs := make([]clientOutput, len(clients))
		for i, c := range clients {
			outputs[i] = clientToOutput(c)
		}

		b, _ := json.MarshalIndent(outputs, jsonPrefix, jsonIndent)
		fmt.Println(string(b))
		return nil
	},
}

var clientViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View a single client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			return errors.New("--id is required")
		}

		c, err := container.ClientService.GetClient(ctx, id)
		if err != nil {
			if errors.Is(err, sharedErrors.ErrClientNotFound) {
				return fmt.Errorf("client %s not found", id)
			}
			return fmt.Errorf("failed to get client: %w", err)
		}

		b, _ := json.MarshalIndent(clientToOutput(c), jsonPrefix, jsonIndent)
		fmt.Println(string(b))
		return nil
	},
}

var clientSetEntityCmd = &cobra.Command{
	Use:   "set-entity",
	Short: "Attach a canonical entity profile (JSON file) to a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		file, _ := cmd.Flags().GetString("file")
		if id == "" {
			return errors.New("--id is required")
		}
		if file == "" {
			return errors.New("--file is required")
		}

		c, err := container.ClientService.SetEntityFromFile(ctx, id, file)
		if err != nil {
			if errors.Is(err, sharedErrors.ErrClientNotFound) {
				return fmt.Errorf("client %s not found", id)
			}
			return fmt.Errorf("failed to set entity: %w", err)
		}

		fmt.Printf("%s entity profile for client %s\n", colorSuccess("Updated"), c.Name())
		if ent := c.Entity(); ent != nil && ent.Web.CanonicalDomain != "" {
			fmt.Printf("%s Canonical domain: %s\n", colorInfo("→"), ent.Web.CanonicalDomain)
		}
		return nil
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a client profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			return errors.New("--id is required")
		}

		if err := container.ClientService.DeleteClient(ctx, id); err != nil {
			if errors.Is(err, sharedErrors.ErrClientNotFound) {
				return fmt.Errorf("client %s not found", id)
			}
			return fmt.Errorf("failed to delete client: %w", err)
		}

		fmt.Printf("%s client %s\n", colorSuccess("Deleted"), id)
		return nil
	},
}

func init() {
	clientCreateCmd.Flags().String("name", "", "client business name")

	clientViewCmd.Flags().String("id", "", "client ID")

	clientSetEntityCmd.Flags().String("id", "", "client ID")
	clientSetEntityCmd.Flags().String("file", "", "path to canonical entity JSON file")

	clientDeleteCmd.Flags().String("id", "", "client ID")

	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientViewCmd)
	clientCmd.AddCommand(clientSetEntityCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}
