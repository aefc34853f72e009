// @title           ServHub API
// @version         1.0
// @description     API маркетплейса услуг: бизнесы, каталог, бронирования.
// @contact.name    ServHub
// @contact.email   support@servhub.test
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /api/v1

package main

import "servhub_backend/internal/app"

func main() {
	app.Run()
}
