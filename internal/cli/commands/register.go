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

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store auth token" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := RegisterRequest{Login: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(apiURL(cfg, "/api/user/register"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusCreated:
		if err := api.PersistAuthFromBody(tokenStore(cfg), body); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	case http.StatusConflict:
		return errors.New("login already taken")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
