//nolint:mnd
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	methods  = []string{"pickup", "delivery"}
	sizes    = []string{"small", "medium", "large"}
	toppings = []string{"pepperoni", "pineapple", "sausage"}
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Base URL of the pizza service")
	numOrders := flag.Int("count", 1, "Number of orders to submit")
	interval := flag.Duration("interval", 1*time.Second, "Interval between submissions")
	duplicateRate := flag.Float64("duplicate-rate", 0,
		"Probability [0..1] of reusing an already submitted email, to exercise 409 responses")

	flag.Parse()

	gen := &formGenerator{duplicateRate: *duplicateRate}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf(
		"Starting order generator. Will submit %d orders to '%s' every %v\n",
		*numOrders,
		*addr,
		*interval,
	)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	ordersSent := 0

	submitOrder(ctx, *addr, gen)

	ordersSent++
	if ordersSent >= *numOrders {
		log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
		return
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down generator...")
			return
		case <-ticker.C:
			submitOrder(ctx, *addr, gen)
			ordersSent++
			if ordersSent >= *numOrders {
				log.Printf("Submitted all %d orders. Exiting.\n", *numOrders)
				return
			}
		}
	}
}

func submitOrder(ctx context.Context, addr string, gen *formGenerator) {
	form := gen.next()

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(
		reqCtx,
		http.MethodPost,
		addr+"/submit-order",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		log.Printf("Failed to build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("Failed to submit order: %v", err)
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	log.Printf("Submitted order for %s: %s", form.Get("email"), resp.Status)
}

// formGenerator produces fake order submissions. With a non-zero
// duplicateRate it occasionally reuses an earlier email so the service's
// duplicate rejection path gets traffic too.
type formGenerator struct {
	duplicateRate float64
	usedEmails    []string
}

func (g *formGenerator) nextEmail() string {
	if len(g.usedEmails) > 0 && rand.Float64() < g.duplicateRate {
		return g.usedEmails[rand.IntN(len(g.usedEmails))]
	}

	email := gofakeit.Email()
	g.usedEmails = append(g.usedEmails, email)
	return email
}

func (g *formGenerator) next() url.Values {
	form := url.Values{}
	form.Set("fname", gofakeit.FirstName())
	form.Set("lname", gofakeit.LastName())
	form.Set("email", g.nextEmail())
	form.Set("method", methods[rand.IntN(len(methods))])
	form.Set("size", sizes[rand.IntN(len(sizes))])

	for _, topping := range toppings {
		if rand.IntN(2) == 1 {
			form.Add("toppings", topping)
		}
	}

	if rand.IntN(3) == 0 {
		form.Set("comment", gofakeit.Sentence(6))
	}

	return form
}
