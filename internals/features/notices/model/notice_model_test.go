// file: internals/features/notices/model/notice_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoticeActiveWindow(t *testing.T) {
	publish := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	expire := publish.AddDate(0, 0, 7)

	n := Notice{
		NoticePublishAt: publish,
		NoticeExpireAt:  &expire,
	}

	assert.False(t, n.Active(publish.Add(-time.Hour)), "before publish")
	assert.True(t, n.Active(publish), "at publish")
	assert.True(t, n.Active(publish.AddDate(0, 0, 3)), "mid window")
	assert.True(t, n.Active(expire), "at expiry")
	assert.False(t, n.Active(expire.Add(time.Minute)), "after expiry")
}

func TestNoticeActiveNoExpiry(t *testing.T) {
	publish := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	n := Notice{NoticePublishAt: publish}

	assert.True(t, n.Active(publish.AddDate(5, 0, 0)), "never expires")
}
