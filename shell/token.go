package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/Caqil/scanpro-annotate/api"
)

func tokenCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "token",
		Help: "show API token info",
		Func: func(c *ishell.Context) {
			if ctx.Config.Token == "" {
				c.Err(errors.New("no token configured"))
				return
			}

			info, err := api.ParseToken(ctx.Config.Token)
			if err != nil {
				c.Err(err)
				return
			}

			c.Printf("user:    %s\n", info.User)
			if !info.ExpiresAt.IsZero() {
				c.Printf("expires: %s\n", info.ExpiresAt.Format("2006-01-02 15:04:05"))
			}
			if len(info.Scopes) > 0 {
				c.Printf("scopes:  %s\n", strings.Join(info.Scopes, ", "))
			}
			if info.Expired() {
				c.Println("token is expired")
			}
		},
	}
}
