package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/listparty/listparty"
	"github.com/olekukonko/tablewriter"
)

var (
	listSizes   = []int{100, 1_000, 10_000}
	stageDepths = []int{1, 2, 4, 8}
	iters       = 100
)

func main() {
	flag.Parse()
	log.Print("Starting listparty benchmark, please wait...")
	defer log.Print("Finished listparty benchmark")

	tbl := table.NewWriter()
	tbl.SetTitle("Pipeline Runs")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	type summary struct {
		name  string
		items int
		runs  int
	}
	var summaries []summary

	for _, size := range listSizes {
		src := make([]int, size)
		for i := range src {
			src[i] = i
		}

		for _, depth := range stageDepths {
			stages := make([]listparty.Stage[int], depth)
			for i := range stages {
				stages[i] = listparty.Filter(func(args listparty.Args[int]) (func(int) bool, error) {
					max, _ := args.Data["max"].(int)
					return func(n int) bool { return n <= max }, nil
				})
			}

			applied := make(chan struct{}, 1)
			tf := listparty.New(listparty.Config[int]{
				List:   src,
				Data:   listparty.Data{"max": size},
				Stages: stages,
				OnListUpdate: func([]int) {
					select {
					case applied <- struct{}{}:
					default:
					}
				},
			})
			<-applied // initial run

			tach := tachymeter.New(&tachymeter.Config{Size: iters})
			for i := 0; i < iters; i++ {
				start := time.Now()
				tf.UpdateData(listparty.Data{"max": size - i - 1})
				<-applied
				tach.AddTime(time.Since(start))
			}
			tf.Close()

			name := fmt.Sprintf("run: %d items * %d stages", size, depth)
			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					name,
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
			summaries = append(summaries, summary{name: name, items: size * depth * iters, runs: iters})
		}
	}

	tbl.Render()

	sum := tablewriter.NewWriter(os.Stdout)
	sum.SetHeader([]string{"benchmark", "items visited", "applied runs"})
	for _, s := range summaries {
		sum.Append([]string{
			s.name,
			humanize.Comma(int64(s.items)),
			humanize.Comma(int64(s.runs)),
		})
	}
	sum.Render()
}
