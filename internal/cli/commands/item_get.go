package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Show a single item by id" }
func (itemGetCmd) Usage() string       { return "item-get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return ErrUsage
	}

	token, err := authToken(cfg)
	if err != nil {
		return err
	}

	resp, body, err := api.GetJSON(apiURL(cfg, fmt.Sprintf("/api/items/%d/", id)), token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", id)
	case http.StatusUnauthorized:
		return errors.New("token rejected, run `ikcli login` again")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var it itemDTO
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "ID:          %d\n", it.ID)
	fmt.Fprintf(Out, "Name:        %s\n", it.Name)
	fmt.Fprintf(Out, "Description: %s\n", it.Description)
	fmt.Fprintf(Out, "Created:     %s\n", it.CreatedAt)
	fmt.Fprintf(Out, "Updated:     %s\n", it.UpdatedAt)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
