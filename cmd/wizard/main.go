package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"IEDC_Club/internal/wizard"
)

// httpBackend 通过公开 HTTP 接口实现向导依赖的后端能力
type httpBackend struct {
	base   string
	client *http.Client
}

func (b *httpBackend) Lookup(ctx context.Context, memberID string) (*wizard.MemberInfo, error) {
	u := fmt.Sprintf("%s/registrations/public-lookup?membershipId=%s", b.base, url.QueryEscape(memberID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, wizard.ErrMemberNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup failed: %s", resp.Status)
	}

	var body struct {
		MembershipID string `json:"membershipId"`
		Name         string `json:"name"`
		Department   string `json:"department"`
		Semester     string `json:"semester"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &wizard.MemberInfo{
		MemberID:   body.MembershipID,
		Name:       body.Name,
		Department: body.Department,
		Semester:   body.Semester,
	}, nil
}

func (b *httpBackend) CheckExists(ctx context.Context, memberID string) (bool, error) {
	u := fmt.Sprintf("%s/registrations/execom-call-check?membershipId=%s", b.base, url.QueryEscape(memberID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("check failed: %s", resp.Status)
	}
	var body struct {
		Exists bool `json:"exists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	return body.Exists, nil
}

func (b *httpBackend) Submit(ctx context.Context, sub wizard.Submission) error {
	payload, err := json.Marshal(map[string]string{
		"membershipId": sub.MemberID,
		"q1":           sub.Q1,
		"q2":           sub.Q2,
		"q3":           sub.Q3,
		"motivation":   sub.Motivation,
		"role":         sub.Role,
		"skills":       sub.Skills,
		"experience":   sub.Experience,
		"area":         sub.Area,
		"time":         sub.Time,
		"vision":       sub.Vision,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		b.base+"/registrations/execom-call", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusConflict:
		return wizard.ErrConflict
	default:
		var body struct {
			Msg string `json:"msg"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Msg != "" {
			return errors.New(body.Msg)
		}
		return fmt.Errorf("submit failed: %s", resp.Status)
	}
}

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8080", "api base url")
	semesters := flag.String("semesters", "1st Semester,3rd Semester", "eligible semesters")
	flag.Parse()

	backend := &httpBackend{
		base:   strings.TrimRight(*addr, "/"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
	w := wizard.New(backend, strings.Split(*semesters, ","))

	fmt.Println("Execom Call application")
	fmt.Println(`type "back" to go one step back, "restart" to start over, "quit" to exit`)

	in := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		switch w.Current() {
		case wizard.StepEnterID:
			id := prompt(in, "Membership ID: ")
			if handleNav(w, id) {
				continue
			}
			if err := w.Start(ctx, id); err != nil {
				fmt.Println("!", err)
			} else if m := w.Member(); m != nil {
				fmt.Printf("Hello %s (%s, %s)\n", m.Name, m.Department, m.Semester)
			}

		case wizard.StepQ1:
			step(w, in, "Do you currently hold a position in any other club/body? (Yes/No): ", w.AnswerQ1)

		case wizard.StepQ2:
			step(w, in, "Are you willing to step down from that position if selected? (Yes/No): ", w.AnswerQ2)

		case wizard.StepQ3:
			step(w, in, "Do you agree that violating club rules leads to removal? (Yes/No): ", w.AnswerQ3)

		case wizard.StepMotivation:
			motivation := prompt(in, "Why do you want to join the Execom?: ")
			if handleNav(w, motivation) {
				continue
			}
			role := prompt(in, "Which role are you applying for?: ")
			skills := prompt(in, "What skills do you bring?: ")
			if err := w.SetMotivation(motivation, role, skills); err != nil {
				fmt.Println("!", err)
			}

		case wizard.StepExperience:
			experience := prompt(in, "Relevant experience: ")
			if handleNav(w, experience) {
				continue
			}
			area := prompt(in, "Area of interest: ")
			if err := w.SetExperience(experience, area); err != nil {
				fmt.Println("!", err)
			}

		case wizard.StepVision:
			timeCommitment := prompt(in, "Weekly time you can commit: ")
			if handleNav(w, timeCommitment) {
				continue
			}
			vision := prompt(in, "Your vision for the club: ")
			if err := w.SetVision(timeCommitment, vision); err != nil {
				fmt.Println("!", err)
				continue
			}
			if err := w.Submit(ctx); err != nil {
				fmt.Println("! submit failed:", err)
			}

		case wizard.StepFailed:
			answer := prompt(in, "Submission failed. Retry? (Yes/No): ")
			if handleNav(w, answer) {
				continue
			}
			if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
				return
			}
			if err := w.Submit(ctx); err != nil {
				fmt.Println("! submit failed:", err)
			}

		case wizard.StepIneligible:
			fmt.Println("Not eligible:", w.Reason())
			answer := prompt(in, "Start over? (Yes/No): ")
			if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
				return
			}
			w.Restart()

		case wizard.StepSuccess:
			fmt.Println("Application submitted. Good luck!")
			return
		}
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

// step 单字段问答步骤的公共流程
func step(w *wizard.Wizard, in *bufio.Scanner, label string, answer func(string) error) {
	text := prompt(in, label)
	if handleNav(w, text) {
		return
	}
	if err := answer(text); err != nil {
		fmt.Println("!", err)
	}
}

// handleNav 处理 back/restart/quit 导航指令
func handleNav(w *wizard.Wizard, text string) bool {
	switch strings.ToLower(text) {
	case "back":
		if err := w.Back(); err != nil {
			fmt.Println("!", err)
		}
		return true
	case "restart":
		w.Restart()
		return true
	case "quit":
		os.Exit(0)
	}
	return false
}
