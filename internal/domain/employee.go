package domain

// Employee сотрудник. Справочные данные из UserService, в этом сервисе не изменяются.
type Employee struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Customer клиент, оформляющий запись
type Customer struct {
	ID    string
	Name  string
	Email string
}
