package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/membersbook/backend/domain"
)

// Demo fixtures loaded into a fresh database: four networked member
// profiles plus a blank starter profile, and three deals between them
// (one still awaiting approval).
var seedProfiles = []domain.UserProfile{
	{
		ID: "1", Name: "Carlos Silva", Email: "email@gmail.com", Password: "123",
		Company: "TechCorp Brasil", Location: "São Paulo, SP", Sector: "Tecnologia",
		Avatar: "https://i.pravatar.cc/150?u=1",
		Bio:    "CEO especializado em transformação digital com mais de 15 anos de experiência.",
		Revenue: "R$ 5M - R$ 10M", Age: 38, HasChildren: true,
		Hobbies: "Ciclismo, Leitura, Vinho", Experience: "15 anos", Brands: "Microsoft, AWS, Oracle",
		Role: domain.RoleAdmin, Classe: domain.ClasseInfinity, ExperiencePoints: 1250, Status: domain.StatusApproved,
	},
	{
		ID: "2", Name: "Ana Costa", Email: "ana@inovare.com", Password: "123",
		Company: "Inovare Consultoria", Location: "Rio de Janeiro, RJ", Sector: "Consultoria",
		Avatar: "https://i.pravatar.cc/150?u=2",
		Bio:    "Consultora estratégica com foco em growth e escalabilidade.",
		Revenue: "R$ 1M - R$ 5M", Age: 34, HasChildren: false,
		Hobbies: "Viagens, Fotografia", Experience: "10 anos", Brands: "Salesforce, Hubspot",
		Role: domain.RoleMember, Classe: domain.ClasseMembro, ExperiencePoints: 980, Status: domain.StatusApproved,
	},
	{
		ID: "3", Name: "Roberto Lima", Email: "roberto@lima.com", Password: "admin123",
		Company: "Lima & Associados", Location: "Belo Horizonte, MG", Sector: "Advocacia",
		Avatar: "https://i.pravatar.cc/150?u=3",
		Bio:    "Advogado empresarial especialista em M&A e governança.",
		Revenue: "R$ 10M - R$ 50M", Age: 45, HasChildren: true,
		Hobbies: "Golfe, Xadrez", Experience: "20 anos", Brands: "Grandes corporações nacionais",
		Role: domain.RoleMember, Classe: domain.ClasseSocio, ExperiencePoints: 1500, Status: domain.StatusApproved,
	},
	{
		ID: "4", Name: "Marina Santos", Email: "marina@techcorp.com", Password: "123",
		Company: "Health Innovation", Location: "Curitiba, PR", Sector: "Medicina",
		Avatar: "https://i.pravatar.cc/150?u=4",
		Bio:    "Inovando na área da saúde com tecnologia de ponta.",
		Revenue: "R$ 5M - R$ 10M", Age: 39, HasChildren: true,
		Hobbies: "Corrida, Yoga", Experience: "12 anos", Brands: "Hospitais de ponta",
		Role: domain.RoleMember, Classe: domain.ClasseMembro, ExperiencePoints: 740, Status: domain.StatusApproved,
	},
	{
		ID: "current-user", Name: "Seu Perfil", Email: "seuperfil@techcorp.com", Password: "123",
		Company: "Sua Empresa", Location: "Sua Cidade", Sector: "Seu Setor",
		Avatar: "https://i.pravatar.cc/150?u=me",
		Bio:    "Sua bio aqui...",
		Revenue: "Seu faturamento", Age: 30, HasChildren: false,
		Hobbies: "Seus hobbies", Experience: "Seus anos", Brands: "Suas marcas",
		Role: domain.RoleMember, Classe: domain.ClasseInfinity, ExperiencePoints: 740, Status: domain.StatusApproved,
	},
}

var seedDealRecords = []domain.BusinessDeal{
	{
		ID:       "1",
		PartyOne: domain.Party{ID: "1", Name: "Carlos Silva", Company: "TechCorp Brasil", Avatar: "https://i.pravatar.cc/150?u=1"},
		PartyTwo: domain.Party{ID: "3", Name: "Roberto Lima", Company: "Lima & Associados", Avatar: "https://i.pravatar.cc/150?u=3"},
		Deal: domain.DealInfo{
			Title:       "Contrato de Consultoria Jurídica Anual",
			Description: "TechCorp Brasil fecha parceria estratégica com Lima & Associados para consultoria em governança corporativa e M&A.",
			Category:    "Serviços Jurídicos",
			Value:       "R$ 450.000/ano",
			Image:       "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?q=80&w=1932",
		},
		Stats:     domain.DealStats{Congrats: 76, Shares: 18},
		Status:    domain.StatusApproved,
		CreatedAt: time.Date(2025, 9, 12, 10, 0, 0, 0, time.Local).UnixMilli(),
	},
	{
		ID:       "2",
		PartyOne: domain.Party{ID: "2", Name: "Ana Costa", Company: "Inovare Consultoria", Avatar: "https://i.pravatar.cc/150?u=2"},
		PartyTwo: domain.Party{ID: "4", Name: "Marina Santos", Company: "Health Innovation", Avatar: "https://i.pravatar.cc/150?u=4"},
		Deal: domain.DealInfo{
			Title:       "Rodada de Investimento para Expansão",
			Description: "Health Innovation recebe aporte da Inovare Consultoria para desenvolver sua nova plataforma de telemedicina.",
			Category:    "Investimento (Seed)",
			Value:       "R$ 700.000",
		},
		Stats:     domain.DealStats{Congrats: 132, Shares: 54},
		Status:    domain.StatusApproved,
		CreatedAt: time.Date(2025, 9, 11, 15, 30, 0, 0, time.Local).UnixMilli(),
	},
	{
		ID:       "3",
		PartyOne: domain.Party{ID: "2", Name: "Ana Costa", Company: "Inovare Consultoria", Avatar: "https://i.pravatar.cc/150?u=2"},
		PartyTwo: domain.Party{ID: "1", Name: "Carlos Silva", Company: "TechCorp Brasil", Avatar: "https://i.pravatar.cc/150?u=1"},
		Deal: domain.DealInfo{
			Title:       "Parceria para Desenvolvimento de App",
			Description: "Inovare e TechCorp unem forças para criar uma nova plataforma de gestão de projetos.",
			Category:    "Desenvolvimento de Software",
			Value:       "N/A",
		},
		Stats:     domain.DealStats{},
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2025, 9, 13, 11, 0, 0, 0, time.Local).UnixMilli(),
	},
}

const insertUserStmt = `
INSERT INTO users (id, email, password, name, company, location, sector, avatar, bio, revenue,
                   age, hasChildren, hobbies, experience, brands, role, classe, experiencePoints, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertDealStmt = `
INSERT INTO deals (id, partyOne, partyTwo, title, description, category, value, image,
                   congrats, shares, status, createdAt)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func seedUsers(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range seedProfiles {
		hasChildren := 0
		if u.HasChildren {
			hasChildren = 1
		}
		if _, err := tx.ExecContext(ctx, insertUserStmt,
			u.ID, u.Email, u.Password, u.Name, u.Company, u.Location, u.Sector,
			u.Avatar, u.Bio, u.Revenue, u.Age, hasChildren, u.Hobbies,
			u.Experience, u.Brands, string(u.Role), string(u.Classe),
			u.ExperiencePoints, string(u.Status),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func seedDeals(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, d := range seedDealRecords {
		partyOne, err := json.Marshal(d.PartyOne)
		if err != nil {
			return err
		}
		partyTwo, err := json.Marshal(d.PartyTwo)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertDealStmt,
			d.ID, string(partyOne), string(partyTwo),
			d.Deal.Title, d.Deal.Description, d.Deal.Category, d.Deal.Value, d.Deal.Image,
			d.Stats.Congrats, d.Stats.Shares, string(d.Status), d.CreatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}
