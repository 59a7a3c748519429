package service

import (
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// userNames maps user IDs to names for response enrichment.
type userNames map[int64]string

func namesOf(users map[int64]*models.User) userNames {
	names := make(userNames, len(users))
	for id, u := range users {
		names[id] = u.Name
	}
	return names
}

func toProtoUser(user *models.User, withEmail bool) *pb.User {
	u := &pb.User{
		Id:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
	if withEmail {
		u.Email = user.Email
	}
	return u
}

func toProtoGroup(group *models.Group, names userNames) *pb.Group {
	members := make([]*pb.GroupMember, len(group.Members))
	for i, m := range group.Members {
		members[i] = &pb.GroupMember{
			UserId:   m.UserID,
			UserName: names[m.UserID],
			JoinedAt: m.JoinedAt,
		}
	}
	return &pb.Group{
		Id:          group.ID,
		Name:        group.Name,
		CreatedById: group.CreatedByID,
		CreatedAt:   group.CreatedAt,
		Members:     members,
	}
}

func toProtoExpense(e *models.Expense, names userNames) *pb.Expense {
	payments := make([]*pb.Payment, len(e.Payments))
	for i, p := range e.Payments {
		payments[i] = &pb.Payment{
			UserId:   p.UserID,
			UserName: names[p.UserID],
			Amount:   calculator.FormatAmount(p.Amount),
		}
	}
	splits := make([]*pb.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = &pb.Split{
			UserId:   s.UserID,
			UserName: names[s.UserID],
			Amount:   calculator.FormatAmount(s.Amount),
			SplitTag: string(s.Tag),
		}
	}
	return &pb.Expense{
		Id:          e.ID,
		Description: e.Description,
		Amount:      calculator.FormatAmount(e.Amount),
		GroupId:     e.GroupID,
		CreatedById: e.CreatedByID,
		SplitType:   string(e.SplitType),
		CreatedAt:   e.CreatedAt,
		Payments:    payments,
		Splits:      splits,
	}
}

func toProtoSettlement(s *models.Settlement, names userNames) *pb.Settlement {
	return &pb.Settlement{
		Id:           s.ID,
		FromUserId:   s.FromUserID,
		FromUserName: names[s.FromUserID],
		ToUserId:     s.ToUserID,
		ToUserName:   names[s.ToUserID],
		Amount:       calculator.FormatAmount(s.Amount),
		Note:         s.Note,
		CreatedAt:    s.CreatedAt,
	}
}

func toProtoBalance(summary *models.BalanceSummary, userName string, cached bool) *pb.GetBalanceResponse {
	balances := make([]*pb.Balance, len(summary.Balances))
	for i, b := range summary.Balances {
		balances[i] = &pb.Balance{
			UserId:   b.UserID,
			UserName: b.UserName,
			Amount:   calculator.FormatAmount(b.Amount),
		}
	}
	return &pb.GetBalanceResponse{
		UserId:   summary.UserID,
		UserName: userName,
		NetTotal: calculator.FormatAmount(summary.NetTotal),
		Balances: balances,
		Cached:   cached,
	}
}
