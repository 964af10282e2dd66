package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/chris-regnier/echoctl/internal/journal"
	"github.com/spf13/cobra"
)

// profile defines a journaling persona for generating seed data.
type profile struct {
	name        string
	description string
	// daysBack is how far back to start generating entries.
	daysBack int
	// frequency is the approximate probability of writing on any given day (0.0-1.0).
	frequency float64
	// moodChance is the probability a generated entry carries a mood.
	moodChance float64
	// moods weights the mood picked for an entry; repeated values skew the draw.
	moods []journal.Mood
	// entries is a pool of content generators.
	entries []func(day time.Time, rng *rand.Rand) string
}

var profiles = map[string]profile{
	"daily-writer": {
		name:        "daily-writer",
		description: "Consistent daily journaler who rarely misses a day",
		daysBack:    90,
		frequency:   0.92,
		moodChance:  0.85,
		moods: []journal.Mood{
			journal.MoodNormal, journal.MoodNormal, journal.MoodHappy,
			journal.MoodHappy, journal.MoodCheerful, journal.MoodSad,
		},
		entries: []func(day time.Time, rng *rand.Rand) string{
			seedMorning, seedReflection, seedGratitude, seedFreeform,
		},
	},
	"mood-tracker": {
		name:        "mood-tracker",
		description: "Short entries, every day has a mood",
		daysBack:    60,
		frequency:   0.8,
		moodChance:  1.0,
		moods:       journal.Moods,
		entries: []func(day time.Time, rng *rand.Rand) string{
			seedOneLiner, seedFreeform,
		},
	},
	"weekend-journaler": {
		name:        "weekend-journaler",
		description: "Writes mostly on weekends, mood set about half the time",
		daysBack:    120,
		frequency:   0.0, // handled specially per weekday/weekend
		moodChance:  0.5,
		moods: []journal.Mood{
			journal.MoodHappy, journal.MoodCheerful, journal.MoodNormal,
		},
		entries: []func(day time.Time, rng *rand.Rand) string{
			seedWeekend, seedReflection, seedFreeform,
		},
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed [profile]",
	Short: "Seed the journal with realistic sample data",
	Long: `Populate the journal with realistic entries to simulate an active user.

Available profiles:
  daily-writer      – Consistent daily journaler (~90 days, rarely misses)
  mood-tracker      – Short moody entries (~60 days)
  weekend-journaler – Writes mostly on weekends (~120 days)

If no profile is specified, "daily-writer" is used.`,
	Example: `  echoctl seed
  echoctl seed mood-tracker
  echoctl seed --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listProfiles, _ := cmd.Flags().GetBool("list")
		if listProfiles {
			fmt.Fprintln(os.Stdout, "Available profiles:")
			for name, p := range profiles {
				fmt.Fprintf(os.Stdout, "  %-20s %s\n", name, p.description)
			}
			return nil
		}

		profileName := "daily-writer"
		if len(args) > 0 {
			profileName = args[0]
		}

		p, ok := profiles[profileName]
		if !ok {
			fmt.Fprintln(os.Stderr, "Run 'echoctl seed --list' to see available profiles.")
			return fmt.Errorf("unknown profile %q", profileName)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		now := time.Now()
		startDate := now.AddDate(0, 0, -p.daysBack)
		created := 0

		for day := startDate; !day.After(now); day = day.AddDate(0, 0, 1) {
			if !shouldWrite(p, day, rng) {
				continue
			}

			gen := p.entries[rng.Intn(len(p.entries))]
			e := journal.Entry{
				Date:    journal.DateKey(day),
				Content: gen(day, rng),
			}
			if rng.Float64() < p.moodChance {
				e.Mood = p.moods[rng.Intn(len(p.moods))]
			}

			if err := store.Put(e); err != nil {
				return fmt.Errorf("seeding %s: %w", e.Date, err)
			}
			created++
		}

		fmt.Fprintf(os.Stdout, "Seeded %d entries with profile %q\n", created, p.name)
		return nil
	},
}

func shouldWrite(p profile, day time.Time, rng *rand.Rand) bool {
	if p.name == "weekend-journaler" {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			return rng.Float64() < 0.85
		}
		return rng.Float64() < 0.12
	}
	return rng.Float64() < p.frequency
}

func seedMorning(day time.Time, rng *rand.Rand) string {
	openers := []string{
		"Up early today.",
		"Slow start this morning.",
		"Woke before the alarm for once.",
	}
	return fmt.Sprintf("%s Coffee, then a walk around the block. Planning to tackle the %s backlog this afternoon.",
		openers[rng.Intn(len(openers))], day.Weekday())
}

func seedReflection(day time.Time, rng *rand.Rand) string {
	topics := []string{"work", "the garden", "that book I keep not finishing", "the move"}
	return fmt.Sprintf("Spent a while thinking about %s today. No conclusions yet, but writing it down helps.",
		topics[rng.Intn(len(topics))])
}

func seedGratitude(day time.Time, rng *rand.Rand) string {
	things := []string{"a quiet evening", "lunch with an old friend", "good weather", "finishing early"}
	return fmt.Sprintf("Grateful for %s.\n\nOtherwise an ordinary %s.", things[rng.Intn(len(things))], day.Weekday())
}

func seedFreeform(day time.Time, rng *rand.Rand) string {
	lines := []string{
		"Nothing remarkable, which is its own kind of good.",
		"Long day. Keeping this one short.",
		"Tried a new recipe, mixed results.",
		"Rain all afternoon. Stayed in and read.",
	}
	return lines[rng.Intn(len(lines))]
}

func seedOneLiner(day time.Time, rng *rand.Rand) string {
	lines := []string{"Fine.", "Busy.", "Better than yesterday.", "Tired but okay.", "Good one."}
	return lines[rng.Intn(len(lines))]
}

func seedWeekend(day time.Time, rng *rand.Rand) string {
	outings := []string{"the farmers market", "a long bike ride", "the coast", "the bouldering gym"}
	return fmt.Sprintf("Saturday-ish energy: went to %s, then cooked a proper dinner.", outings[rng.Intn(len(outings))])
}

func init() {
	seedCmd.Flags().Bool("list", false, "list available profiles")
	rootCmd.AddCommand(seedCmd)
}
