package content

import "github.com/devbook/internal/locale"

type messageKey int

const (
	msgInvalidJSON messageKey = iota
	msgRootObject
	msgBlocksMissing
	msgBlocksEmpty
	msgBlockObject
	msgTypeMissing
	msgTypeUnknown
	msgFieldRequired
	msgFieldString
	msgFieldInteger
	msgFieldArray
	msgFieldUnknown
	msgHeadingLevel
	msgHeadingText
	msgParagraphText
	msgListStyle
	msgListItems
	msgListItem
	msgCodeLanguage
	msgCodeLanguageLong
	msgCodeCode
	msgSummaryText
)

var messages = map[messageKey][2]string{
	msgInvalidJSON:      {"Malformed JSON.", "JSON inválido."},
	msgRootObject:       {"Content must be an object.", "O conteúdo deve ser um objeto."},
	msgBlocksMissing:    {"Blocks must be a list.", "A lista de blocos é obrigatória."},
	msgBlocksEmpty:      {"Add at least 1 content block.", "Adicione pelo menos 1 bloco de conteúdo."},
	msgBlockObject:      {"Block must be an object.", "O bloco deve ser um objeto."},
	msgTypeMissing:      {"Block type is required.", "O tipo do bloco é obrigatório."},
	msgTypeUnknown:      {"Unknown block type.", "Tipo de bloco desconhecido."},
	msgFieldRequired:    {"Field is required.", "Campo obrigatório."},
	msgFieldString:      {"Must be text.", "Deve ser um texto."},
	msgFieldInteger:     {"Must be an integer.", "Deve ser um número inteiro."},
	msgFieldArray:       {"Must be a list.", "Deve ser uma lista."},
	msgFieldUnknown:     {"Field is not allowed.", "Campo não permitido."},
	msgHeadingLevel:     {"Heading level must be 2 or 3.", "O nível do título deve ser 2 ou 3."},
	msgHeadingText:      {"Section heading is required.", "O título da seção é obrigatório."},
	msgParagraphText:    {"Paragraph cannot be empty.", "O parágrafo não pode ficar vazio."},
	msgListStyle:        {"List style must be bullet or numbered.", "Estilo de lista inválido."},
	msgListItems:        {"Add at least 1 list item.", "Adicione pelo menos 1 item na lista."},
	msgListItem:         {"List item cannot be empty.", "Item da lista não pode ficar vazio."},
	msgCodeLanguage:     {"Select a language.", "Selecione a linguagem."},
	msgCodeLanguageLong: {"Language is too long.", "Linguagem muito longa."},
	msgCodeCode:         {"Code cannot be empty.", "O código não pode ficar vazio."},
	msgSummaryText:      {"Summary cannot be empty.", "O resumo final não pode ficar vazio."},
}

// Option configures validation and rendering.
type Option func(*options)

type options struct {
	language string
}

// WithLanguage selects the message language ("pt" or "en"). Portuguese is the default.
func WithLanguage(lang string) Option {
	return func(o *options) {
		o.language = lang
	}
}

func newOptions(opts []Option) options {
	o := options{language: locale.LanguagePortuguese}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o options) msg(key messageKey) string {
	pair := messages[key]
	return locale.Pick(o.language, pair[0], pair[1])
}
