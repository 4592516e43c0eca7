package adapters

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/builders"
)

// Register client
func init() {
	_ = register(&MySQL{}, "mysql")
}

var _ core.Adapter = (*MySQL)(nil)

type MySQL struct{}

func (m *MySQL) Connect(url string) (core.Driver, error) {
	// parseTime makes the driver scan DATETIME/TIMESTAMP columns into time.Time
	match, err := regexp.MatchString(`[\?][\w]+=[\w-]+`, url)
	if err != nil {
		return nil, err
	}
	sep := "?"
	if match {
		sep = "&"
	}

	db, err := sql.Open("mysql", url+sep+"parseTime=true")
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mysql database: %v", err)
	}

	return &mysqlDriver{
		c: builders.NewClient(db),
	}, nil
}
