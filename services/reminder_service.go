// services/reminder_service.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"clientpulse-backend/config"
	"clientpulse-backend/models"
	"clientpulse-backend/store"
	"clientpulse-backend/utils"
)

// ReminderService periodically scans for pending follow-ups that are due and
// notifies the client's phone via Twilio. Without Twilio credentials it only
// logs what it would have sent, which keeps local development working.
type ReminderService struct {
	store store.Store
	log   *logrus.Logger

	client       *twilio.RestClient
	from         string
	whatsappFrom string

	spec string
	cron *cron.Cron
}

func NewReminderService(s store.Store, cfg config.Config, log *logrus.Logger) *ReminderService {
	svc := &ReminderService{
		store:        s,
		log:          log,
		from:         cfg.TwilioPhoneNumber,
		whatsappFrom: cfg.TwilioWhatsAppNumber,
		spec:         cfg.ReminderCron,
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		svc.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return svc
}

// StartScheduler registers the reminder sweep with cron and starts it.
func (s *ReminderService) StartScheduler() error {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, s.SendDueReminders); err != nil {
		return fmt.Errorf("invalid reminder cron spec %q: %w", s.spec, err)
	}
	c.Start()
	s.cron = c
	s.log.Infof("reminder scheduler started (%s)", s.spec)
	return nil
}

// Stop halts the scheduler. Already-running sweeps finish on their own.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDueReminders runs one sweep over the store.
func (s *ReminderService) SendDueReminders() {
	due := DueFollowUps(s.store, time.Now())
	if len(due) == 0 {
		return
	}
	s.log.Infof("processing %d due follow-up reminder(s)", len(due))
	for _, followUp := range due {
		s.remind(followUp)
	}
}

// DueFollowUps returns the pending follow-ups due today, tomorrow or overdue.
func DueFollowUps(st store.Store, now time.Time) []models.FollowUp {
	var due []models.FollowUp
	for _, f := range st.GetAllFollowUps() {
		if f.Status != "pending" {
			continue
		}
		if utils.DaysBetween(now, f.DueDate) <= 1 {
			due = append(due, f)
		}
	}
	return due
}

func (s *ReminderService) remind(followUp models.FollowUp) {
	client, ok := s.store.GetClient(followUp.ClientID)
	if !ok || client.Phone == nil || *client.Phone == "" {
		s.log.Debugf("follow-up %s: no reachable client, skipping", followUp.ID)
		return
	}

	message := fmt.Sprintf("Reminder: %q for %s is due %s",
		followUp.Title, client.Name, followUp.DueDate.Format("Jan 2, 2006"))

	if s.client == nil {
		s.log.Infof("twilio not configured, would send to %s: %s", *client.Phone, message)
		return
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	to := *client.Phone
	from := s.from
	if strings.HasPrefix(to, "+") && s.whatsappFrom != "" {
		to = "whatsapp:" + to
		from = "whatsapp:" + s.whatsappFrom
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Errorf("failed to send reminder for follow-up %s: %v", followUp.ID, err)
		return
	}
	if resp.Sid != nil {
		s.log.Infof("reminder sent for follow-up %s, SID %s", followUp.ID, *resp.Sid)
	} else {
		s.log.Infof("reminder sent for follow-up %s", followUp.ID)
	}
}
