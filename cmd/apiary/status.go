package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/apiary"
	"github.com/osse101/Apiary_Go/internal/bootstrap"
	"github.com/osse101/Apiary_Go/internal/config"
	"github.com/osse101/Apiary_Go/internal/crop"
	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/order"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print plots, hives, inventory and orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				st, err := app.Service.State(ctx)
				if err != nil {
					return err
				}
				renderStatus(cmd.OutOrStdout(), st, app.Clock.Now())
				return nil
			})
		},
	}
}

// withApp builds the app for an offline command with quiet logging
func withApp(ctx context.Context, run func(context.Context, *bootstrap.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lc := logger.DefaultConfig()
	lc.Level = logger.LogLevelWarn
	logger.Init(lc)

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return run(ctx, app)
}

func renderStatus(w io.Writer, st *apiary.State, now time.Time) {
	printTitle(w, "Apiary - level %d", st.Level)
	fmt.Fprintf(w, "Coins: %d   Water: %d/%d   Pollination factor: %d (%d harvests)\n",
		st.Inventory.Coins, st.Water.Current, st.Water.Max,
		st.PollinationFactor.Factor, st.PollinationFactor.TotalHarvests)

	printTitle(w, "Plots")
	plots := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"#", "State", "Crop", "Stage", "Water"}))
	for _, p := range st.Plots {
		cropName := "-"
		if p.CropType != nil {
			cropName = crop.DisplayName(*p.CropType)
		}
		water := ""
		if p.NeedsWater {
			water = "needs water"
		}
		_ = plots.Append([]string{
			strconv.Itoa(p.ID),
			string(p.State),
			cropName,
			fmt.Sprintf("%d/%d", p.GrowthStage, domain.MaxGrowthStage),
			water,
		})
	}
	_ = plots.Render()

	printTitle(w, "Hives")
	hives := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Hive", "Bees", "Nectar", "Honey batch", "Flavor"}))
	for _, h := range st.Hives {
		_ = hives.Append([]string{
			h.ID,
			fmt.Sprintf("%d/%d", h.BeeCount, h.Capacity),
			fmt.Sprintf("%.1f", h.NectarLevel),
			bar(h.HoneySummary.Progress/100, 10),
			h.HoneySummary.DominantFlavor,
		})
	}
	_ = hives.Render()
	if st.Capacity.AvailableCapacity == 0 {
		printWarning(w, "Hives are full. Build another hive to hatch more bees.")
	}

	printTitle(w, "Inventory")
	inv := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Kind", "Item", "Count"}))
	appendBucket := func(kind string, bucket map[string]int) {
		for _, id := range slices.Sorted(maps.Keys(bucket)) {
			if bucket[id] == 0 {
				continue
			}
			_ = inv.Append([]string{kind, crop.DisplayName(id), strconv.Itoa(bucket[id])})
		}
	}
	appendBucket("seed", st.Inventory.Seeds)
	appendBucket("crop", st.Inventory.Crops)
	appendBucket("item", st.Inventory.Items)
	for _, t := range domain.HoneyTypes {
		if n := st.Inventory.Honey[t]; n > 0 {
			_ = inv.Append([]string{"honey", order.GradeOf(t).Name, strconv.Itoa(n)})
		}
	}
	_ = inv.Render()

	if len(st.Merchants) > 0 {
		printTitle(w, "Merchants")
		merchants := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Merchant", "Affinity", "Bonus"}))
		for _, m := range st.Merchants {
			_ = merchants.Append([]string{
				m.Name,
				bar(float64(m.Affinity)/domain.MaxAffinity, 10),
				fmt.Sprintf("+%d%%", order.AffinityBonus(m.Affinity)),
			})
		}
		_ = merchants.Render()
	}

	printTitle(w, "Orders")
	if len(st.Orders) == 0 {
		printDim(w, "No active orders")
	} else {
		orders := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Order", "Merchant", "Wants", "Reward", "Expires in"}))
		for _, o := range st.Orders {
			_ = orders.Append([]string{
				o.ID,
				o.MerchantID,
				describeOrder(o),
				fmt.Sprintf("%d (+%d%%)", o.TotalReward, o.BonusPercentage),
				o.ExpiresAt.Sub(now).Truncate(time.Minute).String(),
			})
		}
		_ = orders.Render()
	}

	if len(st.HoneyOrders) > 0 {
		printTitle(w, "Honey orders")
		honey := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Customer", "Wants", "Reward"}))
		for _, o := range st.HoneyOrders {
			_ = honey.Append([]string{
				o.Customer,
				fmt.Sprintf("%dx %s", o.Bottles, order.GradeOf(o.HoneyType).Name),
				strconv.Itoa(o.CoinReward),
			})
		}
		_ = honey.Render()
	}
}

func describeOrder(o domain.Order) string {
	reqs, err := o.Requirements()
	if err != nil {
		return "?"
	}
	out := ""
	for i, r := range reqs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%dx %s", r.Quantity, crop.DisplayName(r.ID))
	}
	return out
}
