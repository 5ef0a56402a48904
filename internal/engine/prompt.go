package engine

import (
	"fmt"
	"strings"
)

// WelcomeMessage opens every session as the first user turn; it is queued
// without reading input or touching the network.
const WelcomeMessage = `Welcome to Drafter - your document assistant.

I can help you:
- Create new documents from scratch
- Edit and improve existing content
- Save your work to files
- Provide writing suggestions

What would you like to create or work on today?`

// repromptMessage stands in for blank user input.
const repromptMessage = "Please provide some input or say 'save' to finish."

// UnsavedNotice is printed when the user cancels before a save completes.
const UnsavedNotice = "Goodbye! Your work has not been saved."

const inputPrompt = "\nWhat would you like to do with the document? "

const systemPromptTemplate = `You are Drafter, a helpful and professional document writing assistant. Your role is to help users create, edit, and manage documents effectively.

CAPABILITIES:
- Update document content using the 'update' tool
- Save documents to files using the 'save' tool
- Provide writing suggestions and improvements
- Help with document structure and formatting

GUIDELINES:
- Always be helpful, professional, and clear in your responses
- When updating content, use the 'update' tool with the complete new content
- When saving, use the 'save' tool with an appropriate filename
- Show the current document state after any modifications
- Provide constructive feedback and suggestions
- Ask clarifying questions when needed

Current document content:
%s

Remember: Always show the current document state after any changes.`

// SystemPrompt returns the session prompt embedding the current document
// snapshot. Called fresh before every model call.
func SystemPrompt(doc string) string {
	if strings.TrimSpace(doc) == "" {
		doc = "No content yet"
	}
	return fmt.Sprintf(systemPromptTemplate, doc)
}
