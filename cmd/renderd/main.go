package main

import (
	"bufio"
	"chat-render/config"
	"chat-render/contract"
	"chat-render/domain"
	"chat-render/groups"
	"chat-render/moderation"
	"chat-render/render"
	"chat-render/repositories"
	"chat-render/services"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, owns the interactive loop, and centralizes
// error reporting so deferred cleanup executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	format, err := config.Load(cfg.FormatFilepath)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Stores, provider, censor
	mutes := repositories.NewMuteStore(db, log)
	ignores := repositories.NewIgnoreStore(db, log)
	colors := repositories.NewColorStore()

	var provider *groups.StaticProvider
	if len(format.Groups) > 0 {
		if provider, err = groups.NewStaticProvider(format.Groups); err != nil {
			return err
		}
	}

	var censor *moderation.Moderator
	if len(format.CensoredWords) > 0 {
		replacement, err := format.CensorRune()
		if err != nil {
			return err
		}
		mod, err := moderation.NewModerator(format.CensoredWords, replacement, log)
		if err != nil {
			return fmt.Errorf("censor setup failed: %w", err)
		}
		censor = &mod
	}

	// 4. Pipeline & service
	cache := render.NewFormatCache(cfg.CacheTTL)
	pipeline := render.NewPipeline(log, format, mutes, ignores, colors, providerOrNil(provider), cache, censor)
	service := services.NewRenderService(pipeline, mutes, ignores, colors)

	log.Info("renderd ready", "static", format.UseStaticFormat(), "item-display", format.UseItemDisplay())
	return loop(service, os.Stdin)
}

// providerOrNil keeps a nil *StaticProvider from turning into a non-nil
// interface value inside the pipeline.
func providerOrNil(p *groups.StaticProvider) contract.IGroupProvider {
	if p == nil {
		return nil
	}
	return p
}

var (
	prompt  = color.New(color.FgCyan).Render("renderd>")
	danger  = color.New(color.FgRed)
	success = color.New(color.FgGreen)
)

// loop reads demo traffic from r. Plain lines are "<name> <message...>";
// slash commands drive the moderation stores:
//
//	/mute <name> <duration|0> [reason...]
//	/unmute <name>
//	/ignore <viewer> <sender>
//	/unignore <viewer> <sender>
//	/color <name> <#hex|<gradient:...>|<tag>>
func loop(service services.IRenderService, in *os.File) error {
	players := make(map[string]domain.Sender)

	scanner := bufio.NewScanner(in)
	fmt.Println(prompt, "type '<name> <message>' or a /command")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if err := command(service, players, line); err != nil {
				fmt.Println(danger.Render("error:"), err)
			}
			continue
		}

		name, message, ok := strings.Cut(line, " ")
		if !ok {
			fmt.Println(danger.Render("usage:"), "<name> <message>")
			continue
		}
		sender := player(players, name)

		var viewers []uuid.UUID
		for _, p := range players {
			if p.ID != sender.ID {
				viewers = append(viewers, p.ID)
			}
		}

		result, cancelled, err := service.PostChat(sender, message, viewers)
		if err != nil {
			fmt.Println(danger.Render("render failed:"), err)
			continue
		}
		if cancelled {
			fmt.Println(danger.Render("[to "+sender.Name+"]"), result.Notice)
			continue
		}
		fmt.Printf("%s %s (viewers: %d)\n", success.Render("[chat]"), result.Text, len(result.Viewers))
	}
	return scanner.Err()
}

func command(service services.IRenderService, players map[string]domain.Sender, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/mute":
		if len(fields) < 3 {
			return fmt.Errorf("usage: /mute <name> <duration|0> [reason...]")
		}
		var d time.Duration
		if fields[2] != "0" {
			var err error
			if d, err = time.ParseDuration(fields[2]); err != nil {
				return err
			}
		}
		return service.Mute(player(players, fields[1]).ID, d, "console", strings.Join(fields[3:], " "))
	case "/unmute":
		if len(fields) != 2 {
			return fmt.Errorf("usage: /unmute <name>")
		}
		return service.Unmute(player(players, fields[1]).ID)
	case "/ignore":
		if len(fields) != 3 {
			return fmt.Errorf("usage: /ignore <viewer> <sender>")
		}
		return service.Ignore(player(players, fields[1]).ID, player(players, fields[2]).ID)
	case "/unignore":
		if len(fields) != 3 {
			return fmt.Errorf("usage: /unignore <viewer> <sender>")
		}
		return service.Unignore(player(players, fields[1]).ID, player(players, fields[2]).ID)
	case "/color":
		if len(fields) != 3 {
			return fmt.Errorf("usage: /color <name> <#hex|gradient|tag>")
		}
		id := player(players, fields[1]).ID
		if strings.HasPrefix(fields[2], "#") || strings.HasPrefix(fields[2], "<gradient:") {
			return service.SetCustomColor(id, fields[2])
		}
		return service.SetColorTag(id, fields[2])
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

// player returns the demo sender for name, creating it on first sight with a
// deterministic id so format-config group members can reference it.
func player(players map[string]domain.Sender, name string) domain.Sender {
	if sender, ok := players[name]; ok {
		return sender
	}
	sender := domain.Sender{
		ID:          uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name)),
		Name:        name,
		DisplayName: name,
		Perms:       domain.Permissions{Colors: true, Formatting: true, ItemLink: true},
	}
	players[name] = sender
	return sender
}
