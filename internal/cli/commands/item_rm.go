package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type itemRmCmd struct{}

func (itemRmCmd) Name() string        { return "item-rm" }
func (itemRmCmd) Description() string { return "Delete an item by id" }
func (itemRmCmd) Usage() string       { return "item-rm <id>" }

func (itemRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	endpoint := apiURL(cfg, fmt.Sprintf("/api/items/%d/", id))
	resp, body, err := api.DoJSON(http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusNoContent:
		fmt.Fprintf(Out, "Deleted item %d\n", id)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", id)
	case http.StatusUnauthorized:
		return errors.New("token rejected, run `ikcli login` again")
	}
	return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(itemRmCmd{}) }
