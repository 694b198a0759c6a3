package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// LoginRequest is the body of POST /users/login
type LoginRequest struct {
	Key string `json:"key"`
}

// TokenResponse is the body returned by a successful login
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse is the envelope returned by GET /users/profile
type ProfileResponse struct {
	Data struct {
		ID   string `json:"id"`
		TgID string `json:"tgId"`
	} `json:"data"`
}

// BurstResult contains metrics for a single login
type BurstResult struct {
	TgID         int64
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Token        string
	Error        error
}

// BurstStats contains aggregated statistics of a run
type BurstStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	Tokens             map[int64][]string // successful tokens per Telegram ID
	Lock               sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of logins to send")
	tgIDsStr := flag.String("u", "", "Comma-separated Telegram IDs to log in as (default: 5 random never-seen IDs)")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	botToken := flag.String("bot-token", os.Getenv("GKV_AUTH_BOT_TOKEN"), "Bot token used to sign init data")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	tgIDs := parseTgIDs(*tgIDsStr)
	if len(tgIDs) == 0 {
		base := 9_000_000_000 + rand.Int63n(1_000_000_000)
		for i := int64(0); i < 5; i++ {
			tgIDs = append(tgIDs, base+i)
		}
	}
	if *botToken == "" {
		fmt.Println("Warning: no bot token, init data is unsigned and only accepted by servers without one")
	}

	fmt.Printf("Login burst against %s for %d Telegram IDs: %v\n", *baseURL, len(tgIDs), tgIDs)
	fmt.Printf("Concurrency: %d goroutines, total logins: %d\n", *concurrency, *totalRequests)

	stats := &BurstStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		Tokens:        make(map[int64][]string),
	}

	results := make(chan BurstResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *botToken, *delayMs, tgIDs, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			if result.Success {
				stats.SuccessfulRequests++
				stats.Tokens[result.TgID] = append(stats.Tokens[result.TgID], result.Token)
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	if !checkOneUserPerTgID(*baseURL, stats) {
		os.Exit(1)
	}
}

func parseTgIDs(list string) []int64 {
	var ids []int64
	for _, part := range strings.Split(list, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func worker(baseURL, botToken string, delayMs int, tgIDs []int64, jobs <-chan int, results chan<- BurstResult) {
	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		tgID := tgIDs[rand.Intn(len(tgIDs))]
		body, err := json.Marshal(LoginRequest{Key: buildInitData(botToken, tgID)})
		if err != nil {
			results <- BurstResult{TgID: tgID, Error: err}
			continue
		}

		start := time.Now()
		resp, err := client.Post(baseURL+"/users/login", "application/json", bytes.NewReader(body))
		result := BurstResult{TgID: tgID, ResponseTime: time.Since(start)}
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		result.StatusCode = resp.StatusCode
		var token TokenResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&token)
		resp.Body.Close()

		switch {
		case resp.StatusCode != http.StatusOK:
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		case decodeErr != nil:
			result.Error = fmt.Errorf("decode token: %w", decodeErr)
		default:
			result.Success = true
			result.Token = token.Token
		}
		results <- result
	}
}

// buildInitData produces Telegram-style init data, signed when a bot token is given
func buildInitData(botToken string, tgID int64) string {
	user, _ := json.Marshal(map[string]any{
		"id":         tgID,
		"first_name": "Burst",
		"last_name":  strconv.FormatInt(tgID, 10),
		"username":   fmt.Sprintf("burst_%d", tgID),
	})
	fields := map[string]string{
		"query_id":  fmt.Sprintf("burst-%d", rand.Int63()),
		"user":      string(user),
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
	}

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	if botToken == "" {
		return values.Encode()
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

// checkOneUserPerTgID resolves every issued token and reports Telegram IDs that map to more than one user
func checkOneUserPerTgID(baseURL string, stats *BurstStats) bool {
	client := &http.Client{Timeout: 10 * time.Second}
	ok := true

	fmt.Println("\n----------------- IDENTITY CHECK -----------------")
	for tgID, tokens := range stats.Tokens {
		userIDs := map[string]struct{}{}
		for _, token := range tokens {
			req, err := http.NewRequest(http.MethodGet, baseURL+"/users/profile", nil)
			if err != nil {
				continue
			}
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := client.Do(req)
			if err != nil {
				fmt.Printf("Telegram ID %d: profile request failed: %v\n", tgID, err)
				ok = false
				continue
			}
			var profile ProfileResponse
			_ = json.NewDecoder(resp.Body).Decode(&profile)
			resp.Body.Close()
			if profile.Data.ID != "" {
				userIDs[profile.Data.ID] = struct{}{}
			}
		}

		if len(userIDs) == 1 {
			fmt.Printf("Telegram ID %d: %d logins, 1 user\n", tgID, len(tokens))
			continue
		}
		fmt.Printf("Telegram ID %d: %d logins resolved to %d users\n", tgID, len(tokens), len(userIDs))
		ok = false
	}
	return ok
}

func printResults(stats *BurstStats) {
	var avg, p50, p90, p99 time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		sorted := make([]time.Duration, n)
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var total time.Duration
		for _, d := range sorted {
			total += d
		}
		avg = total / time.Duration(n)
		p50 = sorted[n*50/100]
		p90 = sorted[n*90/100]
		p99 = sorted[n*99/100]
	}

	fmt.Println("\n================= BURST RESULTS =================")
	fmt.Printf("Total Logins:        %d\n", stats.TotalRequests)
	fmt.Printf("Successful Logins:   %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Logins:       %d\n", stats.FailedRequests)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	if stats.TotalTime > 0 {
		fmt.Printf("Logins per second:   %.2f\n", float64(stats.SuccessfulRequests)/stats.TotalTime.Seconds())
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P99 Response:        %v\n", p99)

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
