package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"groq-chat/internal/config"
	"groq-chat/internal/kv"
	"groq-chat/internal/llm"
	"groq-chat/internal/session"
	"groq-chat/internal/store"
	"groq-chat/internal/view"
)

// terminalRenderer re-derives the whole view from the store on every
// signal, mirroring the presentation-shell contract.
type terminalRenderer struct {
	store    *store.Store
	exchange *session.Exchange
}

func (r *terminalRenderer) RenderHistory() {
	fmt.Println("--- conversations ---")
	for i, item := range view.ProjectHistory(r.store) {
		marker := " "
		if item.Active {
			marker = "*"
		}
		fmt.Printf("%s %2d. %s\n", marker, i+1, item.Title)
	}
}

func (r *terminalRenderer) RenderMessages() {
	typing := false
	if r.exchange != nil {
		typing = r.exchange.Typing()
	}
	t := view.ProjectMessages(r.store.Active(), typing)
	if t.Empty {
		fmt.Println("Start a new chat to talk to the assistant.")
		return
	}
	for _, b := range t.Bubbles {
		fmt.Printf("[%s] %s\n", b.Role, b.Content)
	}
	if t.Typing {
		fmt.Println("Assistant is typing...")
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn(".env file not found", zap.Error(err))
	}

	cfg, err := config.New()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	persistence, err := newPersistence(cfg)
	if err != nil {
		logger.Fatal("failed to init persistence", zap.Error(err))
	}

	st := store.New(persistence, logger)
	st.Load()

	renderer := &terminalRenderer{store: st}
	ctrl := session.NewController(st, renderer)
	client := llm.NewRelay(cfg.ServerURL, cfg.ChatModel, nil)
	exchange := session.NewExchange(st, ctrl, client, renderer)
	renderer.exchange = exchange

	renderer.RenderHistory()
	renderer.RenderMessages()
	fmt.Println("Commands: /new, /list, /open <n>, /quit. Anything else is sent.")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit":
			return
		case line == "/new":
			ctrl.NewConversation("")
		case line == "/list":
			renderer.RenderHistory()
		case strings.HasPrefix(line, "/open "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/open ")))
			if err != nil || n < 1 || n > st.Len() {
				fmt.Println("No such conversation.")
				continue
			}
			ctrl.Select(st.List()[n-1].ID)
		default:
			// Failures already surface as assistant messages; keep the
			// underlying cause in the logs only.
			if err := exchange.Send(ctx, line); err != nil {
				logger.Debug("send failed", zap.Error(err))
			}
		}
	}
}

func newPersistence(cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		return kv.NewSQLiteStore(cfg.SQLitePath)
	default:
		return kv.NewFileStore(cfg.StoreDir)
	}
}
