package load

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/LilVoxy/coursework_sales/models"
	"github.com/LilVoxy/coursework_sales/utils"
)

// UserLoader отвечает за разрешение суррогатных ключей измерения пользователей
type UserLoader struct {
	db     *sqlx.DB
	logger *utils.ETLLogger

	// Кэш суррогатных ключей в пределах одного запуска: user_key -> id
	cache map[int]int
}

// NewUserLoader создает новый экземпляр UserLoader
func NewUserLoader(db *sqlx.DB, logger *utils.ETLLogger) *UserLoader {
	return &UserLoader{
		db:     db,
		logger: logger,
		cache:  make(map[int]int),
	}
}

// Resolve возвращает суррогатный ключ dim_user для натурального ключа
// пользователя. Если записи еще нет, она создается. Повторный вызов с тем же
// ключом возвращает тот же идентификатор.
func (l *UserLoader) Resolve(userKey int) (id int, created bool, err error) {
	if id, ok := l.cache[userKey]; ok {
		return id, false, nil
	}

	err = l.db.Get(&id, "SELECT id FROM dim_user WHERE user_key = ?", userKey)
	if err == nil {
		l.cache[userKey] = id
		return id, false, nil
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("ошибка при поиске пользователя %d в dim_user: %w", userKey, err)
	}

	// Пользователь встретился впервые: создаем запись измерения
	user := models.UserDimension{UserKey: userKey}
	result, err := l.db.NamedExec("INSERT INTO dim_user (user_key) VALUES (:user_key)", user)
	if err != nil {
		return 0, false, fmt.Errorf("ошибка при вставке пользователя %d в dim_user: %w", userKey, err)
	}

	insertID, err := result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("ошибка при получении ID новой записи dim_user: %w", err)
	}

	id = int(insertID)
	l.cache[userKey] = id
	l.logger.Debug("Создана запись dim_user: user_key=%d, id=%d", userKey, id)

	return id, true, nil
}
