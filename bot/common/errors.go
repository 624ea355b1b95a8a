package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError represents a structured error with user-facing and internal messages
type BotError struct {
	UserMessage string // Message shown to Discord user
	LogMessage  string // Internal message for logging
	Err         error  // Underlying error
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.LogMessage, e.Err)
	}
	return e.LogMessage
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error for user-caused issues (bad trial counts, unknown runs)
func NewUserError(userMessage string, err error) *BotError {
	return &BotError{
		UserMessage: userMessage,
		LogMessage:  "user error",
		Err:         err,
	}
}

// NewSystemError creates an error for system issues (database, broker)
func NewSystemError(err error, logMessage string) *BotError {
	return &BotError{
		UserMessage: "Something went wrong. Please try again later.",
		LogMessage:  logMessage,
		Err:         err,
	}
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("❌ %s", message),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

// FollowUpWithError sends an error message as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: fmt.Sprintf("❌ %s", message),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Errorf("Error sending follow-up error message: %v", err)
	}
}

// HandleError logs err and tells the user what went wrong
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, deferred bool) {
	message := "Something went wrong. Please try again later."
	fields := log.Fields{
		"user_id":     InteractionUserID(i),
		"interaction": InteractionName(i),
		"error":       err.Error(),
	}

	if botErr, ok := err.(*BotError); ok {
		message = botErr.UserMessage
		fields["user_message"] = botErr.UserMessage
		if botErr.LogMessage == "user error" {
			log.WithFields(fields).Debug(botErr.LogMessage)
		} else {
			log.WithFields(fields).Error(botErr.LogMessage)
		}
	} else {
		log.WithFields(fields).Error("Unexpected error in bot interaction")
	}

	if deferred {
		FollowUpWithError(s, i, message)
	} else {
		RespondWithError(s, i, message)
	}
}

// InteractionUserID returns the invoking user's ID for guild and DM interactions
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// InteractionName returns the command name or component custom ID
func InteractionName(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	default:
		return i.Type.String()
	}
}
