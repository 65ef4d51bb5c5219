package commands

import (
	"ItemKeeper/internal/cli/api"
	"ItemKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth token" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/user/login"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		if err := api.PersistAuthFromBody(tokenStore(cfg), body); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid login or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
