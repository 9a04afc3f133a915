package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic trace generation and must match the checks below.
const (
	traceCount   = 40  // Number of distinct RxPacketTrace files uploaded
	usersPerFile = 8   // RNTIs 1..usersPerFile appear in every file
	rowsPerUser  = 250 // Transport blocks per user and direction
	transferSize = 500 // Above the default 200 byte size filter
	sinrDB       = 10.0
)

const rxHeader = "mode\ttime\tframe\tsubF\t1stSym\tsymbol#\tcellId\trnti\tccId\ttbSize\tmcs\trv\tSINR(dB)\tcorrupt\tTBler\tlayerDL\tlayerUL"

// ### End - fixed configs

type traceToSend struct {
	index      int
	body       []byte
	gzipped    bool
	isOriginal bool
}

type ingestResponse struct {
	ID        string `json:"id"`
	LinesRead int    `json:"linesRead"`
}

type runningMean struct {
	Count int64    `json:"count"`
	Mean  *float64 `json:"mean"`
}

type traceResult struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	LinesRead  int    `json:"linesRead"`
	Aggregates struct {
		BlockError map[string]struct {
			BLER runningMean `json:"bler"`
		} `json:"blockError"`
	} `json:"aggregates"`
}

// main runs the e2e scenario: 001_rx_trace_ingest
//
// It uploads traceCount generated RxPacketTrace files to POST /traces, every
// second one gzip compressed, then replays a share of them with the same
// idempotency key. Each stored result is read back through GET /traces/{id}.
//
// Expected results:
//   - Original uploads return 201 Created, replays return 409 Conflict
//   - Every result holds 2*usersPerFile block error keys (DL and UL per user)
//   - The BLER mean of user u in trace i equals tblerFor(i, u)
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	parallel := getEnvInt("PARALLEL", 4)
	totalDuplicates := getEnvInt("TOTAL_DUPLICATES", 20)
	useGzip := getEnvBool("USE_GZIP", true)

	fmt.Println("Starting e2e scenario: 001_rx_trace_ingest")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TRACE_COUNT: %d\n", traceCount)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Printf("USE_GZIP: %v\n", useGzip)
	fmt.Println()

	toSend := make([]traceToSend, 0, traceCount+totalDuplicates)
	for i := 1; i <= traceCount; i++ {
		gzipped := useGzip && i%2 == 0
		body, err := generateTrace(i, gzipped)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate trace %d: %v\n", i, err)
			os.Exit(1)
		}
		toSend = append(toSend, traceToSend{index: i, body: body, gzipped: gzipped, isOriginal: true})
	}
	for d := 0; d < totalDuplicates; d++ {
		original := toSend[d%traceCount]
		original.isOriginal = false
		toSend = append(toSend, original)
	}
	// Originals first so a replay never races its own original.
	sort.SliceStable(toSend, func(i, j int) bool {
		return toSend[i].isOriginal && !toSend[j].isOriginal
	})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		errs      []error
		ids       = make(map[int]string, traceCount)
		created   int64
		conflicts int64
	)
	send := func(batch []traceToSend) {
		workers := make(chan struct{}, parallel)
		for _, t := range batch {
			wg.Add(1)
			workers <- struct{}{}
			go func(t traceToSend) {
				defer wg.Done()
				defer func() { <-workers }()

				status, resp, err := postTrace(baseURL, t)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					errs = append(errs, fmt.Errorf("trace %d: %w", t.index, err))
				case t.isOriginal && status == http.StatusCreated:
					atomic.AddInt64(&created, 1)
					ids[t.index] = resp.ID
				case !t.isOriginal && status == http.StatusConflict:
					atomic.AddInt64(&conflicts, 1)
				default:
					errs = append(errs, fmt.Errorf("trace %d (original=%v): unexpected status %d", t.index, t.isOriginal, status))
				}
			}(t)
		}
		wg.Wait()
	}
	send(toSend[:traceCount])
	send(toSend[traceCount:])

	for i := 1; i <= traceCount; i++ {
		id, ok := ids[i]
		if !ok {
			continue
		}
		if err := verifyTrace(baseURL, i, id); err != nil {
			errs = append(errs, err)
		}
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created: %d\n", atomic.LoadInt64(&created))
	fmt.Printf("Conflicted: %d\n", atomic.LoadInt64(&conflicts))
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

// tblerFor is constant per user so the running mean is exact.
func tblerFor(trace, user int) float64 {
	return float64((trace*usersPerFile+user)%100) / 100
}

func generateTrace(trace int, gzipped bool) ([]byte, error) {
	var b strings.Builder
	b.WriteString(rxHeader)
	b.WriteByte('\n')
	for row := 0; row < rowsPerUser; row++ {
		for user := 1; user <= usersPerFile; user++ {
			for _, mode := range []string{"DL", "UL"} {
				cols := []string{
					mode,
					strconv.FormatFloat(float64(row)*0.001, 'f', 3, 64),
					strconv.Itoa(row / 10), strconv.Itoa(row % 10),
					"1", "4", "1",
					strconv.Itoa(user), "0",
					strconv.Itoa(transferSize), "10", "0",
					strconv.FormatFloat(sinrDB, 'f', 1, 64),
					"0",
					strconv.FormatFloat(tblerFor(trace, user), 'f', 2, 64),
					"0", "0",
				}
				b.WriteString(strings.Join(cols, "\t"))
				b.WriteByte('\n')
			}
		}
	}
	if !gzipped {
		return []byte(b.String()), nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(b.String())); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func postTrace(baseURL string, t traceToSend) (int, *ingestResponse, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/traces", bytes.NewReader(t.body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-trace-format", "rx-trace")
	req.Header.Set("x-trace-label", fmt.Sprintf("trace-%03d", t.index))
	req.Header.Set("x-trace-source", "RxPacketTrace.txt")
	req.Header.Set("idempotency-key", fmt.Sprintf("trace-%06d", t.index))

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return resp.StatusCode, nil, nil
	}
	var body ingestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, &body, nil
}

func verifyTrace(baseURL string, trace int, id string) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + "/traces/" + id)
	if err != nil {
		return fmt.Errorf("trace %d: GET failed: %w", trace, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trace %d: GET returned %d", trace, resp.StatusCode)
	}

	var result traceResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("trace %d: failed to decode result: %w", trace, err)
	}
	if want := 1 + rowsPerUser*usersPerFile*2; result.LinesRead != want {
		return fmt.Errorf("trace %d: linesRead %d, want %d", trace, result.LinesRead, want)
	}
	if got, want := len(result.Aggregates.BlockError), 2*usersPerFile; got != want {
		return fmt.Errorf("trace %d: %d block error keys, want %d", trace, got, want)
	}
	for user := 1; user <= usersPerFile; user++ {
		for _, dir := range []string{"DL", "UL"} {
			key := fmt.Sprintf("%s-%d", dir, user)
			agg, ok := result.Aggregates.BlockError[key]
			if !ok || agg.BLER.Mean == nil {
				return fmt.Errorf("trace %d: missing %s", trace, key)
			}
			if agg.BLER.Count != rowsPerUser {
				return fmt.Errorf("trace %d %s: count %d, want %d", trace, key, agg.BLER.Count, rowsPerUser)
			}
			if math.Abs(*agg.BLER.Mean-tblerFor(trace, user)) > 1e-9 {
				return fmt.Errorf("trace %d %s: BLER %v, want %v", trace, key, *agg.BLER.Mean, tblerFor(trace, user))
			}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
