package load

import (
	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// Loader интерфейс для загрузки данных в OLAP
type Loader interface {
	// ResolveUserDimension возвращает суррогатный ключ измерения пользователей,
	// при необходимости создавая новую запись
	ResolveUserDimension(userKey int) (id int, created bool, err error)

	// ResolveTimeDimension возвращает суррогатный ключ временного измерения,
	// при необходимости создавая новую запись
	ResolveTimeDimension(row models.SalesRow) (id int, created bool, err error)

	// LoadSalesFacts загружает факты продаж
	LoadSalesFacts(facts []models.SalesFact) error
}

// OLAPLoader реализация Loader для OLAP базы данных
type OLAPLoader struct {
	db     *sqlx.DB
	logger *utils.ETLLogger

	// Загрузчики для отдельных таблиц схемы
	userLoader  *UserLoader
	timeLoader  *TimeLoader
	salesLoader *SalesLoader
}

// NewOLAPLoader создает новый экземпляр OLAPLoader
func NewOLAPLoader(db *sqlx.DB, logger *utils.ETLLogger) *OLAPLoader {
	return &OLAPLoader{
		db:          db,
		logger:      logger,
		userLoader:  NewUserLoader(db, logger),
		timeLoader:  NewTimeLoader(db, logger),
		salesLoader: NewSalesLoader(db, logger),
	}
}

// ResolveUserDimension возвращает суррогатный ключ измерения пользователей
func (l *OLAPLoader) ResolveUserDimension(userKey int) (int, bool, error) {
	return l.userLoader.Resolve(userKey)
}

// ResolveTimeDimension возвращает суррогатный ключ временного измерения
func (l *OLAPLoader) ResolveTimeDimension(row models.SalesRow) (int, bool, error) {
	return l.timeLoader.Resolve(row)
}

// LoadSalesFacts загружает факты продаж
func (l *OLAPLoader) LoadSalesFacts(facts []models.SalesFact) error {
	return l.salesLoader.Load(facts)
}
