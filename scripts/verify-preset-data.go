package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Storage shape of a preset entry, kept in sync with the repository
type PresetData struct {
	Name       string   `json:"name"`
	DiceCount  int      `json:"dice_count"`
	DieType    string   `json:"die_type"`
	Modifier   int      `json:"modifier"`
	DamageType string   `json:"damage_type"`
	Tags       []string `json:"tags"`
}

// Catalog limits, kept in sync with the entities package
const (
	maxDiceCount = 100
	minModifier  = -999
	maxModifier  = 999
)

var validDieTypes = map[string]bool{
	"d4": true, "d6": true, "d8": true, "d10": true,
	"d12": true, "d20": true, "d100": true,
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning preset catalog...")

	iter := client.Scan(ctx, 0, "preset:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()

		// Skip the name and tag index sets
		if key == "preset:names" || strings.HasPrefix(key, "preset:tag:") {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			badKeys = append(badKeys, key)
			continue
		}

		var preset PresetData
		if err := json.Unmarshal([]byte(data), &preset); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			badKeys = append(badKeys, key)
			continue
		}

		if problems := checkPreset(key, preset); len(problems) > 0 {
			for _, problem := range problems {
				fmt.Printf("✗ %s: %s\n", key, problem)
			}
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d preset entries, found %d with problems\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("Catalog is clean!")
		return
	}

	fmt.Println("\nEntries needing attention:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}
	os.Exit(1)
}

func checkPreset(key string, preset PresetData) []string {
	var problems []string

	if preset.Name == "" {
		problems = append(problems, "name is empty")
	} else if "preset:"+preset.Name != key {
		problems = append(problems, fmt.Sprintf("name %q does not match key", preset.Name))
	}

	if preset.DiceCount < 0 || preset.DiceCount > maxDiceCount {
		problems = append(problems, fmt.Sprintf("dice_count %d out of range [0, %d]", preset.DiceCount, maxDiceCount))
	}

	if !validDieTypes[preset.DieType] {
		problems = append(problems, fmt.Sprintf("unrecognized die_type %q", preset.DieType))
	}

	if preset.Modifier < minModifier || preset.Modifier > maxModifier {
		problems = append(problems, fmt.Sprintf("modifier %d out of range [%d, %d]", preset.Modifier, minModifier, maxModifier))
	}

	if preset.DamageType == "" {
		problems = append(problems, "damage_type is empty")
	}

	return problems
}
