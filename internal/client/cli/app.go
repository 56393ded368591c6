package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/acquisitions/internal/client/client"
	"github.com/dmitrijs2005/acquisitions/internal/client/config"
)

type App struct {
	config *config.Config
	api    client.Service
	reader *bufio.Reader
	out    io.Writer
	user   *client.User
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewAPIClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "anonymous"
	}
	return fmt.Sprintf("%s (%s)", a.user.Email, a.user.Role)
}
