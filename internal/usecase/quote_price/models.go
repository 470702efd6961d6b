package quote_price

import "github.com/m04kA/SMC-GroomingService/internal/domain"

// Request модель запроса на расчёт стоимости
type Request struct {
	Service domain.ServiceType
	Weight  *domain.PetWeight // nil допустим, цена тогда 0
	Addons  []domain.AddonID
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	Base        domain.Money
	AddonsTotal domain.Money
	Total       domain.Money
	Addons      []domain.AddonID // Учтённые доп. услуги в порядке каталога
	Eligible    []domain.AddonID // Доп. услуги, доступные для выбора
	Ignored     []domain.AddonID // Отброшенные: неизвестные или недоступные
}
