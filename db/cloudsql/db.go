package cloudsql

import (
	"database/sql"
	"fmt"

	appDb "github.com/quillhq/quill-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

// Config carries the DSN pieces for the managed MySQL instance.
type Config struct {
	User string
	Pass string
	Host string
	Name string
}

type CloudSQLDB struct {
	*UserDB
	*GroupDB
	*PostDB
	*CommentDB
	*FollowDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(cfg *Config) (appDb.Database, error) {
	sqlDB, err := sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
			cfg.User, cfg.Pass, cfg.Host, cfg.Name))
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &CloudSQLDB{
		UserDB:    getUserDB(sess),
		GroupDB:   getGroupDB(sess),
		PostDB:    getPostDB(sess),
		CommentDB: getCommentDB(sess),
		FollowDB:  getFollowDB(sess),
		sess:      sess,
		sqlDB:     sqlDB,
	}, nil
}

func (csdb *CloudSQLDB) GetSQLDB() *sql.DB {
	return csdb.sqlDB
}

func (csdb *CloudSQLDB) Close() error {
	return csdb.sess.Close()
}
