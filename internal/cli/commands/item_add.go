package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Create an item" }
func (itemAddCmd) Usage() string       { return "item-add <name> [description]" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	name := args[0]
	description := ""
	if len(args) > 1 {
		description = strings.Join(args[1:], " ")
	}

	token, err := authToken(cfg)
	if err != nil {
		return err
	}

	payload := map[string]string{"name": name, "description": description}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/items/"), payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusBadRequest:
		return fmt.Errorf("rejected: %s", strings.TrimSpace(string(body)))
	case http.StatusUnauthorized:
		return errors.New("token rejected, run `ikcli login` again")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var it itemDTO
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Created item %d: %s\n", it.ID, it.Name)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
