package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/algoport/algoport/internal/algod"
	"github.com/algoport/algoport/internal/classifier"
	"github.com/algoport/algoport/internal/config"
	"github.com/algoport/algoport/internal/export"
	"github.com/algoport/algoport/internal/indexer"
	"github.com/algoport/algoport/internal/metadata"
	"github.com/algoport/algoport/internal/price"
	"github.com/algoport/algoport/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "algoport",
		Usage: "Algorand account portfolio and transaction client",
		Commands: []*cli.Command{
			{
				Name:      "portfolio",
				Usage:     "Classify an account's assets and estimate its value",
				ArgsUsage: "<address>",
				Action:    runPortfolio,
			},
			{
				Name:      "nft",
				Usage:     "List an account's non-fungible holdings with their metadata",
				ArgsUsage: "<address>",
				Action:    runNFTs,
			},
			{
				Name:   "price",
				Usage:  "Show the current ALGO price in USD",
				Action: runPrice,
			},
			{
				Name:   "watch",
				Usage:  "Keep the cached ALGO price fresh until interrupted",
				Action: runWatch,
			},
			{
				Name:      "search",
				Usage:     "Search assets by name",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum number of results"},
				},
				Action: runSearch,
			},
			{
				Name:      "history",
				Usage:     "Show an account's recent transactions",
				ArgsUsage: "<address>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 50, Usage: "maximum number of transactions"},
					&cli.StringFlag{Name: "next", Usage: "pagination token from a previous page"},
				},
				Action: runHistory,
			},
			{
				Name:      "export",
				Usage:     "Write a classified portfolio report to an XLSX file",
				ArgsUsage: "<address>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "portfolio.xlsx", Usage: "output file path"},
				},
				Action: runExport,
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func nodeClient(cfg config.Config) *algod.Client {
	return algod.NewClient(cfg.AlgodURL, cfg.NodeRetryMax, cfg.NodeRetryBaseDelay)
}

func priceService(cfg config.Config) *price.Service {
	oracle := price.NewCoinGeckoClient(cfg.CoinGeckoURL, cfg.CoinGeckoDelay, cfg.CoinGeckoRetryMax)
	return price.NewService(oracle, cfg.PriceStaleThreshold)
}

func requireAddress(c *cli.Context) (string, error) {
	address := c.Args().First()
	if address == "" {
		return "", fmt.Errorf("an account address is required")
	}
	return address, nil
}

func runPortfolio(c *cli.Context) error {
	address, err := requireAddress(c)
	if err != nil {
		return err
	}

	cfg := config.Load()
	svc := classifier.NewService(nodeClient(cfg))

	snapshot, err := svc.Snapshot(c.Context, address)
	if err != nil {
		return err
	}
	classified, err := svc.Classify(c.Context, snapshot)
	if err != nil {
		return err
	}
	valuation := classifier.Valuate(snapshot, classified, priceService(cfg).AlgoPrice(c.Context))

	fmt.Printf("Account:  %s\n", snapshot.Address)
	fmt.Printf("Balance:  %s ALGO ($%s at $%s/ALGO)\n",
		valuation.AlgoBalance, valuation.AlgoValueUSD, valuation.AlgoPriceUSD)
	fmt.Printf("Held:     %d assets (%d non-fungible)\n", valuation.HeldAssets, valuation.NonFungibles)
	fmt.Printf("Estimate: $%s assets, $%s total (placeholder asset pricing)\n",
		valuation.AssetsEstUSD, valuation.TotalUSD)

	for _, a := range classified.Held {
		fmt.Printf("  held    %10d  %-12s %-20s %s\n", a.AssetID, a.UnitName, a.Name, a.Class)
	}
	for _, a := range classified.Created {
		fmt.Printf("  created %10d  %-12s %-20s %s\n", a.AssetID, a.UnitName, a.Name, a.Class)
	}
	return nil
}

func runNFTs(c *cli.Context) error {
	address, err := requireAddress(c)
	if err != nil {
		return err
	}

	cfg := config.Load()
	svc := classifier.NewService(nodeClient(cfg))

	snapshot, err := svc.Snapshot(c.Context, address)
	if err != nil {
		return err
	}
	classified, err := svc.Classify(c.Context, snapshot)
	if err != nil {
		return err
	}

	collection := metadata.NewCollection(metadata.NewClient(cfg.IPFSGatewayURL))
	items := collection.Resolve(c.Context, classified.HeldNFTs())

	for _, item := range items {
		fmt.Printf("%10d  %-12s %s\n", item.AssetID, item.UnitName, item.Name)
		if item.ImageURL != "" {
			fmt.Printf("            image: %s\n", item.ImageURL)
		}
		if desc, ok := item.Metadata["description"].(string); ok && desc != "" {
			fmt.Printf("            %s\n", desc)
		}
	}
	fmt.Printf("%d non-fungible assets\n", len(items))
	return nil
}

func runPrice(c *cli.Context) error {
	cfg := config.Load()
	quote := priceService(cfg).AlgoPrice(c.Context)
	fmt.Printf("ALGO/USD: %s\n", quote)
	return nil
}

func runWatch(c *cli.Context) error {
	cfg := config.Load()
	worker.NewPriceWorker(priceService(cfg), cfg.PriceRefreshEvery).Run(c.Context)
	return nil
}

func runSearch(c *cli.Context) error {
	query := c.Args().First()
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	cfg := config.Load()
	client := indexer.NewClient(cfg.IndexerURL, cfg.NodeRetryMax, cfg.NodeRetryBaseDelay)

	assets, err := client.SearchAssets(c.Context, query, c.Int("limit"))
	if err != nil {
		return err
	}

	for _, a := range assets {
		fmt.Printf("%10d  %-12s %-30s total=%d decimals=%d\n",
			a.Index, a.Params.UnitName, a.Params.Name, a.Params.Total, a.Params.Decimals)
	}
	fmt.Printf("%d assets\n", len(assets))
	return nil
}

func runHistory(c *cli.Context) error {
	address, err := requireAddress(c)
	if err != nil {
		return err
	}

	cfg := config.Load()
	client := indexer.NewClient(cfg.IndexerURL, cfg.NodeRetryMax, cfg.NodeRetryBaseDelay)

	page, err := client.AccountTransactions(c.Context, address, c.Int("limit"), c.String("next"))
	if err != nil {
		return err
	}

	for _, tx := range page.Transactions {
		when := time.Unix(tx.RoundTime, 0).UTC().Format(time.RFC3339)
		switch {
		case tx.Payment != nil:
			fmt.Printf("%s  %-6s %s -> %s  %d microalgos (round %d)\n",
				when, tx.TxType, tx.Sender, tx.Payment.Receiver, tx.Payment.Amount, tx.ConfirmedRound)
		case tx.AssetTransfer != nil:
			fmt.Printf("%s  %-6s %s -> %s  %d of asset %d (round %d)\n",
				when, tx.TxType, tx.Sender, tx.AssetTransfer.Receiver,
				tx.AssetTransfer.Amount, tx.AssetTransfer.AssetID, tx.ConfirmedRound)
		default:
			fmt.Printf("%s  %-6s %s (round %d)\n", when, tx.TxType, tx.Sender, tx.ConfirmedRound)
		}
	}
	if page.NextToken != "" {
		fmt.Printf("next page: --next %s\n", page.NextToken)
	}
	return nil
}

func runExport(c *cli.Context) error {
	address, err := requireAddress(c)
	if err != nil {
		return err
	}

	cfg := config.Load()
	svc := classifier.NewService(nodeClient(cfg))

	snapshot, err := svc.Snapshot(c.Context, address)
	if err != nil {
		return err
	}
	classified, err := svc.Classify(c.Context, snapshot)
	if err != nil {
		return err
	}
	valuation := classifier.Valuate(snapshot, classified, priceService(cfg).AlgoPrice(c.Context))

	out := c.String("out")
	if err := export.WriteXLSX(out, export.Report{
		Snapshot:   snapshot,
		Classified: classified,
		Valuation:  valuation,
		At:         time.Now(),
	}); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
