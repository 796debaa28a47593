package cli

import (
	"fmt"
	"log/slog"

	"github.com/mchmarny/modelrep/pkg/auth"
	"github.com/mchmarny/modelrep/pkg/llm"
	"github.com/mchmarny/modelrep/pkg/net"
	"github.com/mchmarny/modelrep/pkg/score"
	"github.com/mchmarny/modelrep/pkg/source"
	"github.com/urfave/cli/v2"
)

var (
	ownerFlag = &cli.StringFlag{
		Name:     "owner",
		Usage:    "GitHub repository owner",
		Required: true,
	}

	repoFlag = &cli.StringFlag{
		Name:     "repo",
		Usage:    "GitHub repository name",
		Required: true,
	}

	modelFlag = &cli.StringFlag{
		Name:     "model",
		Usage:    "Hugging Face model ID (e.g. bert-base-uncased)",
		Required: true,
	}

	scoreCmd = &cli.Command{
		Name:            "score",
		Usage:           "Score the trustworthiness of an ML artifact",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:  "github",
				Usage: "Score a GitHub repository",
				UsageText: `modelrep score github --owner huggingface --repo transformers
   modelrep score github --owner huggingface --repo transformers --llm --format ndjson`,
				Action: cmdScoreGitHub,
				Flags: []cli.Flag{
					ownerFlag,
					repoFlag,
					llmFlag,
					workersFlag,
					formatFlag,
				},
			},
			{
				Name:  "hf",
				Usage: "Score a Hugging Face model",
				UsageText: `modelrep score hf --model bert-base-uncased
   modelrep score hf --model bert-base-uncased --format yaml`,
				Action: cmdScoreHF,
				Flags: []cli.Flag{
					modelFlag,
					llmFlag,
					workersFlag,
					formatFlag,
				},
			},
		},
	}
)

func cmdScoreGitHub(c *cli.Context) error {
	owner := c.String(ownerFlag.Name)
	repo := c.String(repoFlag.Name)
	if owner == "" || repo == "" {
		return cli.ShowSubcommandHelp(c)
	}

	hc := net.GetOAuthClient(c.Context, auth.GetGitHubToken())
	raw, err := source.FetchRepo(c.Context, hc, owner, repo)
	if err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %w", owner, repo, err)
	}

	return runScore(c, raw)
}

func cmdScoreHF(c *cli.Context) error {
	model := c.String(modelFlag.Name)
	if model == "" {
		return cli.ShowSubcommandHelp(c)
	}

	raw, err := source.FetchModel(c.Context, net.GetHTTPClient(), model)
	if err != nil {
		return fmt.Errorf("failed to fetch model %s: %w", model, err)
	}

	return runScore(c, raw)
}

func runScore(c *cli.Context, raw map[string]any) error {
	cfg := appConfig()

	workers := c.Int(workersFlag.Name)
	if !c.IsSet(workersFlag.Name) && cfg.Workers > 0 {
		workers = cfg.Workers
	}
	opts := []score.Option{
		score.WithWorkers(workers),
	}

	if c.Bool(llmFlag.Name) || cfg.UseLLM {
		clientOpts := []llm.Option{}
		if cfg.GenAIURL != "" {
			clientOpts = append(clientOpts, llm.WithAPIURL(cfg.GenAIURL))
		}
		if cfg.GenAIModel != "" {
			clientOpts = append(clientOpts, llm.WithModel(cfg.GenAIModel))
		}
		opts = append(opts, score.WithAnalyzer(llm.NewClient(auth.GetGenAIKey(), clientOpts...)))
	}

	board, results, err := score.NewScorer(opts...).Score(c.Context, raw)
	if err != nil {
		return fmt.Errorf("failed to score artifact: %w", err)
	}

	slog.Debug("scored artifact", "net_score", board.NetScore, "metrics", len(results))
	return render(c.App.Writer, board, results)
}
