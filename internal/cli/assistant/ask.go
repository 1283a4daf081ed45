package assistant

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dreambook/internal/chat"
	"dreambook/internal/cli"
	"dreambook/internal/storage"
)

type AskCmd struct {
	Message []string `arg:"" help:"What to ask the assistant."`
}

func (c *AskCmd) Run(ctx *cli.Context) error {
	message := strings.TrimSpace(strings.Join(c.Message, " "))
	if message == "" {
		return fmt.Errorf("nothing to ask")
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil && err != storage.ErrProfileNotFound {
		return err
	}
	dreams, err := ctx.Store.GetAllDreams()
	if err != nil {
		return err
	}

	responder := chat.NewResponder(rand.New(rand.NewSource(time.Now().UnixNano())))
	fmt.Println(responder.Respond(message, &profile, dreams))
	return nil
}
