package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"nola/internal/client"
	"nola/internal/dashboard"
	"nola/pkg/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	apiURL := flag.String("api", "", "Analytics API base URL (defaults to $API_BASE_URL or http://localhost:8080)")
	period := flag.String("period", "7d", "Revenue period: 7d, 30d, month, 6m")
	timeout := flag.Duration("timeout", 0, "Per-request timeout (0 = none)")
	interactive := flag.Bool("i", false, "Interactive mode (period/sort/reload commands on stdin)")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	baseURL := *apiURL
	if baseURL == "" {
		baseURL = os.Getenv("API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	if !models.Period(*period).Valid() {
		log.Fatal().Str("period", *period).Msg("Invalid period, expected one of 7d, 30d, month, 6m")
	}

	c := client.New(client.Config{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: *timeout},
	})

	ctx := context.Background()
	orch := dashboard.NewOrchestrator(c, models.Period(*period))
	tableSort := dashboard.DefaultTableSort()

	orch.Load(ctx)
	waitSettled(orch)
	fmt.Print(dashboard.Render(orch.Snapshot(), tableSort))

	if !*interactive {
		if orch.Snapshot().Err != nil {
			os.Exit(1)
		}
		return
	}

	fmt.Println("\ncommands: period <7d|30d|month|6m>, sort <name|Vendas|Faturamento>, reload, quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "period":
			if len(fields) != 2 || !models.Period(fields[1]).Valid() {
				fmt.Println("usage: period <7d|30d|month|6m>")
				continue
			}
			orch.SetPeriod(ctx, models.Period(fields[1]))
			waitSettled(orch)
		case "sort":
			if len(fields) != 2 {
				fmt.Println("usage: sort <name|Vendas|Faturamento>")
				continue
			}
			tableSort.Click(dashboard.Column(fields[1]))
		case "reload":
			orch.Load(ctx)
			waitSettled(orch)
		case "quit", "q":
			return
		default:
			fmt.Println("unknown command")
		}

		fmt.Print(dashboard.Render(orch.Snapshot(), tableSort))
	}
}

// waitSettled blocks until no resource is loading. A hung request without
// a -timeout keeps us here, matching the dashboard's own behavior.
func waitSettled(orch *dashboard.Orchestrator) {
	for orch.Snapshot().Loading {
		<-orch.Updates()
	}
}
