// Command llamaedge is a small CLI for a LlamaEdge API server.
//
// Configuration is layered: a .env file in the working directory, a YAML
// config file (see pkg/config for the discovery order), and LLAMAEDGE_*
// environment variables.
//
//	llamaedge [-config path] chat [-stream] <prompt>
//	llamaedge [-config path] rag-chat <prompt>
//	llamaedge [-config path] retrieve <prompt>
//	llamaedge [-config path] embed <text> [<text>...]
//	llamaedge [-config path] transcribe [-language code] <audio-file>
//	llamaedge [-config path] translate [-language code] <audio-file>
//	llamaedge [-config path] image <prompt>
//	llamaedge [-config path] upload <file>
//	llamaedge [-config path] chunk [-capacity n] <file>
//	llamaedge [-config path] files
//	llamaedge [-config path] models
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/client"
	"github.com/LlamaEdge/llamaedge-go/pkg/config"
	"github.com/LlamaEdge/llamaedge-go/pkg/debug"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

func main() {
	if err := run(); err != nil {
		slog.Error("llamaedge failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; environment wins over it.
	_ = godotenv.Load()
	debug.Init("", "")

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("no command given")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	c, err := client.New(cfg.Server.URL)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command, rest := args[0], args[1:]
	switch command {
	case "chat":
		return runChat(ctx, c, cfg, rest)
	case "rag-chat":
		return runRagChat(ctx, c, cfg, rest)
	case "retrieve":
		return runRetrieve(ctx, c, cfg, rest)
	case "embed":
		return runEmbed(ctx, c, cfg, rest)
	case "transcribe":
		return runTranscribe(ctx, c, rest)
	case "translate":
		return runTranslate(ctx, c, rest)
	case "image":
		return runImage(ctx, c, rest)
	case "upload":
		return runUpload(ctx, c, rest)
	case "chunk":
		return runChunk(ctx, c, rest)
	case "files":
		return runFiles(ctx, c)
	case "models":
		return runModels(ctx, c)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func chatHistory(cfg *config.Config, prompt string) []api.Message {
	var history []api.Message
	if cfg.Chat.SystemPrompt != "" {
		history = append(history, api.NewSystemMessage(cfg.Chat.SystemPrompt))
	}
	return append(history, api.NewUserMessage(prompt))
}

func chatParams(cfg *config.Config) params.Chat {
	p := params.DefaultChat()
	p.Model = cfg.Chat.Model
	*p.Temperature = cfg.Chat.Temperature
	*p.MaxTokens = cfg.Chat.MaxTokens
	return p
}

func ragParams(cfg *config.Config) params.RagChat {
	p := params.DefaultRagChat()
	p.Model = cfg.Chat.Model
	p.MaxTokens = cfg.Chat.MaxTokens
	p.ContextWindow = cfg.Rag.ContextWindow
	if cfg.Rag.VdbServerURL != "" {
		p.Vdb = &params.VdbConfig{
			ServerURL:      cfg.Rag.VdbServerURL,
			CollectionName: cfg.Rag.CollectionName,
			Limit:          cfg.Rag.Limit,
			ScoreThreshold: cfg.Rag.ScoreThreshold,
		}
		if cfg.Rag.APIKey != "" {
			p.Vdb.APIKey = &cfg.Rag.APIKey
		}
	}
	return p
}

func runChat(ctx context.Context, c *client.Client, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	stream := fs.Bool("stream", false, "stream the reply as it is generated")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: llamaedge chat [-stream] <prompt>")
	}

	history := chatHistory(cfg, fs.Arg(0))
	if !*stream {
		reply, err := c.Chat(ctx, history, chatParams(cfg))
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	}

	events, err := c.ChatStream(ctx, history, chatParams(cfg))
	if err != nil {
		return err
	}
	for ev := range events {
		if ev.Err != nil {
			return ev.Err
		}
		fmt.Print(ev.Content, " ")
	}
	fmt.Println()
	return nil
}

func runRagChat(ctx context.Context, c *client.Client, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: llamaedge rag-chat <prompt>")
	}
	reply, err := c.RagChat(ctx, chatHistory(cfg, args[0]), ragParams(cfg))
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

func runRetrieve(ctx context.Context, c *client.Client, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: llamaedge retrieve <prompt>")
	}
	results, err := c.RetrieveContext(ctx, chatHistory(cfg, args[0]), ragParams(cfg))
	if err != nil {
		return err
	}
	return printJSON(results)
}

func runEmbed(ctx context.Context, c *client.Client, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: llamaedge embed <text> [<text>...]")
	}
	p := params.DefaultEmbeddings()
	p.Model = cfg.Embeddings.Model
	resp, err := c.Embeddings(ctx, args, p)
	if err != nil {
		return err
	}
	for _, emb := range resp.Data {
		fmt.Printf("[%d] %d dimensions\n", emb.Index, len(emb.Embedding))
	}
	return nil
}

func runTranscribe(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("transcribe", flag.ExitOnError)
	language := fs.String("language", "en", "ISO-639-1 code of the spoken language")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: llamaedge transcribe [-language code] <audio-file>")
	}

	result, err := c.Transcribe(ctx, fs.Arg(0), *language, params.DefaultTranscription())
	if err != nil {
		return err
	}
	fmt.Println(result.Text)
	return nil
}

func runTranslate(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	language := fs.String("language", "en", "ISO-639-1 code of the spoken language")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: llamaedge translate [-language code] <audio-file>")
	}

	result, err := c.Translate(ctx, fs.Arg(0), *language, params.DefaultTranslation())
	if err != nil {
		return err
	}
	fmt.Println(result.Text)
	return nil
}

func runImage(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: llamaedge image <prompt>")
	}
	images, err := c.CreateImage(ctx, args[0], params.DefaultImageCreate())
	if err != nil {
		return err
	}
	for _, img := range images {
		switch {
		case img.URL != nil:
			fmt.Println(*img.URL)
		case img.B64JSON != nil:
			fmt.Printf("base64 image, %d bytes\n", len(*img.B64JSON))
		}
	}
	return nil
}

func runUpload(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: llamaedge upload <file>")
	}
	file, err := c.UploadFile(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Println(file.ID)
	return nil
}

func runChunk(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("chunk", flag.ExitOnError)
	capacity := fs.Int("capacity", 100, "maximum characters per chunk")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: llamaedge chunk [-capacity n] <file>")
	}

	chunks, err := c.ChunkFile(ctx, fs.Arg(0), *capacity)
	if err != nil {
		return err
	}
	return printJSON(chunks)
}

func runFiles(ctx context.Context, c *client.Client) error {
	files, err := c.ListFiles(ctx)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("%s\t%d bytes\t%s\n", f.ID, f.Bytes, f.Filename)
	}
	return nil
}

func runModels(ctx context.Context, c *client.Client) error {
	models, err := c.ListModels(ctx)
	if err != nil {
		return err
	}
	for _, m := range models {
		fmt.Println(m.ID)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
