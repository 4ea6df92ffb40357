package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type LogStats struct {
	OrdersCreated       int
	GatewayFailures     int
	PaymentsVerified    int
	RepeatVerifications int
	SignatureFailures   int
	WebhookAuthFailures int
	WebhookDuplicates   int
	RateLimited         int
	TotalErrors         int
	WebhookOutcomes     map[string]int
	RejectedWebhooks    []string
	UnreconciledOrders  []string
	ErrorPatterns       map[string]int
}

var (
	// "INFO: 2024/01/02 15:04:05 file.go:12: message"
	messagePattern        = regexp.MustCompile(`^\w+: \S+ \S+ [\w.]+:\d+: (.*)$`)
	webhookOutcomePattern = regexp.MustCompile(`^Webhook event \S+ \(([^)]+)\) for order \S*: (\w+)$`)
	webhookRejectPattern  = regexp.MustCompile(`^Webhook event (\S+) \(([^)]+)\) for order (\S*) rejected`)
	unreconciledPattern   = regexp.MustCompile(`^Gateway order (\S+) created but not persisted`)
	numberPattern         = regexp.MustCompile(`\d+`)
)

func main() {
	var logDir, date string

	cmd := &cobra.Command{
		Use:   "analyze-logs",
		Short: "Summarize one day of payment logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := &LogStats{
				WebhookOutcomes: make(map[string]int),
				ErrorPatterns:   make(map[string]int),
			}

			if err := scanLog(filepath.Join(logDir, fmt.Sprintf("info-%s.log", date)), func(msg string) { analyzeInfo(msg, stats) }); err != nil {
				return err
			}
			if err := scanLog(filepath.Join(logDir, fmt.Sprintf("error-%s.log", date)), func(msg string) { analyzeError(msg, stats) }); err != nil {
				return err
			}

			printReport(date, stats)
			return nil
		},
	}
	cmd.Flags().StringVar(&logDir, "dir", "./logs", "log directory")
	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanLog(logFile string, handle func(msg string)) error {
	file, err := os.Open(logFile)
	if err != nil {
		return fmt.Errorf("error opening log file %s: %w", logFile, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := messagePattern.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
		handle(line)
	}
	return scanner.Err()
}

func analyzeInfo(msg string, stats *LogStats) {
	switch {
	case strings.HasPrefix(msg, "Payment order ") && strings.Contains(msg, " created - Amount:"):
		stats.OrdersCreated++
	case strings.Contains(msg, "marked paid by payment"):
		stats.PaymentsVerified++
	case strings.Contains(msg, "already paid, verification is a no-op"):
		stats.RepeatVerifications++
	case strings.HasSuffix(msg, "deduplicated"):
		stats.WebhookDuplicates++
	case strings.HasPrefix(msg, "Rate limit exceeded"):
		stats.RateLimited++
	}

	if m := webhookOutcomePattern.FindStringSubmatch(msg); m != nil {
		stats.WebhookOutcomes[m[1]+" "+m[2]]++
	}
}

func analyzeError(msg string, stats *LogStats) {
	stats.TotalErrors++

	switch {
	case strings.HasPrefix(msg, "Gateway order creation failed"):
		stats.GatewayFailures++
	case strings.HasPrefix(msg, "Payment verification failed"):
		stats.SignatureFailures++
	case strings.HasPrefix(msg, "Webhook signature verification failed"):
		stats.WebhookAuthFailures++
	}

	if m := webhookRejectPattern.FindStringSubmatch(msg); m != nil {
		stats.WebhookOutcomes[m[2]+" rejected"]++
		stats.RejectedWebhooks = append(stats.RejectedWebhooks, fmt.Sprintf("%s (%s) order %s", m[1], m[2], m[3]))
	}
	if m := unreconciledPattern.FindStringSubmatch(msg); m != nil {
		stats.UnreconciledOrders = append(stats.UnreconciledOrders, m[1])
	}

	extractErrorPattern(msg, stats)
}

// extractErrorPattern groups messages by their text with ids and numbers blanked out
func extractErrorPattern(msg string, stats *LogStats) {
	if i := strings.Index(msg, ":"); i > 0 {
		msg = msg[:i]
	}
	stats.ErrorPatterns[numberPattern.ReplaceAllString(msg, "N")]++
}

func printReport(date string, stats *LogStats) {
	fmt.Println("\n=== Payment Log Report ===")
	fmt.Println("Day:", date)
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Orders:")
	fmt.Printf("   Created: %d\n", stats.OrdersCreated)
	fmt.Printf("   Gateway Failures: %d\n", stats.GatewayFailures)
	fmt.Printf("   Rate Limited Requests: %d\n", stats.RateLimited)

	fmt.Println("\n2. Verification:")
	fmt.Printf("   Payments Verified: %d\n", stats.PaymentsVerified)
	fmt.Printf("   Repeat Verifications: %d\n", stats.RepeatVerifications)
	fmt.Printf("   Signature Failures: %d\n", stats.SignatureFailures)

	fmt.Println("\n3. Webhooks:")
	fmt.Printf("   Signature Failures: %d\n", stats.WebhookAuthFailures)
	fmt.Printf("   Duplicates: %d\n", stats.WebhookDuplicates)
	printTop(stats.WebhookOutcomes, 10, "events")
	for _, r := range stats.RejectedWebhooks {
		fmt.Printf("   rejected: %s\n", r)
	}

	fmt.Println("\n4. Needs Reconciliation:")
	if len(stats.UnreconciledOrders) == 0 {
		fmt.Println("   none")
	}
	for _, id := range stats.UnreconciledOrders {
		fmt.Printf("   gateway order %s\n", id)
	}

	fmt.Println("\n5. Errors:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)
	printTop(stats.ErrorPatterns, 5, "occurrences")
}

func printTop(counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var entries []entry
	for key, count := range counts {
		entries = append(entries, entry{key, count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	for i, e := range entries {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d %s\n", e.key, e.count, unit)
	}
}
