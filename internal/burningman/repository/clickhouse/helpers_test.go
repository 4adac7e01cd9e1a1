package clickhouse

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// expectScannedRows queues Next/Scan expectations that copy values into scan targets
// followed by the final Next, Err and Close calls.
func expectScannedRows(rows *MockRows, values [][]any) []*gomock.Call {
	calls := make([]*gomock.Call, 0, 2*len(values)+3)
	for _, row := range values {
		row := row
		anys := make([]interface{}, len(row))
		for i := range anys {
			anys[i] = gomock.Any()
		}
		calls = append(calls,
			rows.EXPECT().Next().Return(true),
			rows.EXPECT().Scan(anys...).Do(func(dest ...any) {
				for i, d := range dest {
					reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
				}
			}).Return(nil),
		)
	}
	calls = append(calls,
		rows.EXPECT().Next().Return(false),
		rows.EXPECT().Err().Return(nil),
		rows.EXPECT().Close().Return(nil),
	)
	return calls
}

func inOrder(groups ...[]*gomock.Call) {
	var all []*gomock.Call
	for _, g := range groups {
		all = append(all, g...)
	}
	gomock.InOrder(all...)
}
