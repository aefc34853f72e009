package email

import (
	"fmt"
	"html/template"
	"strings"
)

// TemplateData представляет данные для шаблонов писем
type TemplateData map[string]interface{}

const confirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Добро пожаловать в ServHub!</h2>
	<p>Для подтверждения почты перейдите по ссылке:</p>
	<p><a href="{{.Hostname}}/confirm/{{.Token}}">Подтвердить почту</a></p>
	<p>Ссылка действительна 24 часа. Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</body>
</html>
`

const passwordResetTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Сброс пароля</h2>
	<p>Вы запросили сброс пароля. Перейдите по ссылке:</p>
	<p><a href="{{.Hostname}}/reset/{{.Token}}">Сбросить пароль</a></p>
	<p>Ссылка действительна 60 минут. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
</body>
</html>
`

const businessApprovedTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Ваш бизнес подтверждён</h2>
	<p>Модерация одобрила вашу заявку. Теперь вы можете войти и публиковать услуги.</p>
</body>
</html>
`

const businessRejectedTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Заявка отклонена</h2>
	<p>К сожалению, модерация отклонила вашу заявку. Свяжитесь с поддержкой для уточнения причин.</p>
</body>
</html>
`

var templates = map[string]*template.Template{}

func init() {
	for name, text := range map[string]string{
		"confirmation":      confirmationTemplate,
		"password_reset":    passwordResetTemplate,
		"business_approved": businessApprovedTemplate,
		"business_rejected": businessRejectedTemplate,
	} {
		templates[name] = template.Must(template.New(name).Parse(text))
	}
}

// renderTemplate рендерит встроенный шаблон с данными
func renderTemplate(name string, data TemplateData) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	builder := &strings.Builder{}
	if err := tmpl.Execute(builder, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return builder.String(), nil
}
