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
	"net/url"
	"strconv"
	"strings"
)

// itemDTO — запись, как её отдаёт сервер.
type itemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// pageDTO — конверт пагинации списка.
type pageDTO struct {
	Count    int64     `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []itemDTO `json:"results"`
}

// authToken читает сохранённый токен; без токена работать с items нельзя.
func authToken(cfg *config.Config) (string, error) {
	token, err := tokenStore(cfg).Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("not logged in, run `ikcli login` first")
	}
	return token, nil
}

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List items (paginated, filterable)" }
func (itemsCmd) Usage() string {
	return "items [--page N] [--page-size N] [--name <exact>] [--search <substr>]"
}

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(Out)
	page := fs.Int("page", 0, "page number")
	pageSize := fs.Int("page-size", 0, "page size")
	name := fs.String("name", "", "exact name filter")
	search := fs.String("search", "", "substring search")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	token, err := authToken(cfg)
	if err != nil {
		return err
	}

	q := url.Values{}
	if *page > 0 {
		q.Set("page", strconv.Itoa(*page))
	}
	if *pageSize > 0 {
		q.Set("page_size", strconv.Itoa(*pageSize))
	}
	if *name != "" {
		q.Set("name", *name)
	}
	if *search != "" {
		q.Set("search", *search)
	}
	endpoint := apiURL(cfg, "/api/items/")
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("token rejected, run `ikcli login` again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pageResp pageDTO
	if err := json.Unmarshal(body, &pageResp); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Fprintf(Out, "Total: %d\n", pageResp.Count)
	for _, it := range pageResp.Results {
		fmt.Fprintf(Out, "%6d  %-30s %s\n", it.ID, it.Name, it.Description)
	}
	if pageResp.Next != nil {
		cur := *page
		if cur < 1 {
			cur = 1
		}
		fmt.Fprintln(Out, "More: --page", cur+1)
	}
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
