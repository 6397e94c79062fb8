/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package account

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type stsMock struct {
	calls int
	err   error
}

func (m *stsMock) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

func TestHandler_AccountID(t *testing.T) {
	m := &stsMock{}
	h := New(m)
	for i := 0; i < 2; i++ {
		id, err := h.AccountID(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if id != "123456789012" {
			t.Errorf("expected: 123456789012, got: %s", id)
		}
	}
	if m.calls != 1 {
		t.Errorf("expected 1 call, got %d", m.calls)
	}
	h = New(&stsMock{err: errors.New("test")})
	if _, err := h.AccountID(context.Background()); err == nil {
		t.Error("expected error")
	}
}
