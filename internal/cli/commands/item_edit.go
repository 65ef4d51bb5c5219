package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Update item fields (PATCH semantics)" }
func (itemEditCmd) Usage() string       { return "item-edit <id> [--name <name>] [--desc <description>]" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return ErrUsage
	}

	fs := flag.NewFlagSet("item-edit", flag.ContinueOnError)
	fs.SetOutput(Out)
	name := fs.String("name", "", "new name")
	desc := fs.String("desc", "", "new description")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	// отправляем только то, что пользователь явно передал
	payload := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			payload["name"] = *name
		case "desc":
			payload["description"] = *desc
		}
	})
	if len(payload) == 0 {
		return ErrUsage
	}

	token, err := authToken(cfg)
	if err != nil {
		return err
	}

	endpoint := apiURL(cfg, fmt.Sprintf("/api/items/%d/", id))
	resp, body, err := api.DoJSON(http.MethodPatch, endpoint, payload, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", id)
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
	fmt.Fprintf(Out, "Updated item %d: %s\n", it.ID, it.Name)
	return nil
}

func init() { RegisterCmd(itemEditCmd{}) }
