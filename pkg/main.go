package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "git.solsynth.dev/hypernet/storyview/pkg/internal"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/cache"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/http"
	"git.solsynth.dev/hypernet/storyview/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____  _                __     ___\n/ ___|| |_ ___  _ __ _  \\ \\   / (_) _____      __\n\\___ \\| __/ _ \\| '__| | | \\ \\ / /| |/ _ \\ \\ /\\ / /\n ___) | || (_) | |  | |_| |\\ V / | |  __/\\ V  V /\n|____/ \\__\\___/|_|   \\__, | \\_/  |_|\\___| \\_/\\_/\n                     |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Hypernet.StoryView"), pkg.AppVersion)
	fmt.Printf("The full story presentation service in Hypernet\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	viper.SetDefault("bind", "0.0.0.0:8445")
	viper.SetDefault("views.idle_ttl", "30m")
	viper.SetDefault("views.sweep_spec", "@every 1m")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	if viper.GetBool("debug.enabled") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Initialize cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	if _, err := quartz.AddFunc(
		viper.GetString("views.sweep_spec"),
		services.DoSweepIdleViews(viper.GetDuration("views.idle_ttl")),
	); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when scheduling idle view sweeping.")
	}
	quartz.Start()

	// Server
	server := http.NewServer()
	go server.Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	_ = server.Shutdown()
}
