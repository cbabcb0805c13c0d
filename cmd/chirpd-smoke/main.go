// chirpd-smoke is a small smoke/load client for a running chirpd
// instance. It checks /healthz, then fires a burst of post creations and
// reads and reports latency, using fasthttp to keep client overhead out
// of the measurement.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
)

func main() {
	base := flag.String("addr", "http://127.0.0.1:8080", "base URL of the chirpd instance")
	n := flag.Int("n", 100, "number of posts to create")
	apiKey := flag.String("api-key", "", "optional API key sent as X-API-Key")
	flag.Parse()

	c := &fasthttp.Client{
		Name:         "chirpd-smoke",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	status, _, err := do(c, *apiKey, fasthttp.MethodGet, *base+"/healthz", nil)
	if err != nil || status != fasthttp.StatusOK {
		fmt.Printf("healthz failed: status=%d err=%v\n", status, err)
		os.Exit(1)
	}
	fmt.Println("healthz ok")

	start := time.Now()
	created := 0
	for i := 0; i < *n; i++ {
		body := []byte(fmt.Sprintf(`{"msg":"smoke %d"}`, i))
		status, _, err := do(c, *apiKey, fasthttp.MethodPost, *base+"/post", body)
		if err != nil {
			fmt.Printf("create %d failed: %v\n", i, err)
			os.Exit(1)
		}
		if status != fasthttp.StatusOK {
			fmt.Printf("create %d failed: status=%d\n", i, status)
			os.Exit(1)
		}
		created++
	}
	elapsed := time.Since(start)
	fmt.Printf("created %d posts in %v (%.1f/s)\n", created, elapsed, float64(created)/elapsed.Seconds())

	start = time.Now()
	status, _, err = do(c, *apiKey, fasthttp.MethodGet, *base+"/posts/range", nil)
	if err != nil || status != fasthttp.StatusOK {
		fmt.Printf("range read failed: status=%d err=%v\n", status, err)
		os.Exit(1)
	}
	fmt.Printf("range read ok in %v\n", time.Since(start))
}

func do(c *fasthttp.Client, apiKey, method, url string, body []byte) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI(url)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}
	if err := c.Do(req, resp); err != nil {
		return 0, nil, err
	}
	out := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), out, nil
}
