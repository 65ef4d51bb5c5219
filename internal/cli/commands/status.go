package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check server availability and auth state" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	resp, body, err := api.GetJSON(apiURL(cfg, "/api/healthcheck"), "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var hr struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &hr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Server:", hr.Status)

	token, _ := tokenStore(cfg).Load()
	if token == "" {
		fmt.Fprintln(Out, "Auth: no token stored, run `ikcli login`")
	} else {
		fmt.Fprintln(Out, "Auth: token stored")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
